package rediscache

import "github.com/redis/go-redis/v9"

// pruneLua defines prune, which removes order entries whose envelope key has
// expired. keep is left alone.
const pruneLua = `
local function prune(order, prefix, keep)
  for _, k in ipairs(redis.call('LRANGE', order, 0, -1)) do
    if k ~= keep and redis.call('EXISTS', prefix .. k) == 0 then
      redis.call('LREM', order, 0, k)
    end
  end
end
`

// pruneScript: KEYS[1] order list, ARGV[1] entry prefix.
// Returns the surviving keys, oldest first.
var pruneScript = redis.NewScript(pruneLua + `
prune(KEYS[1], ARGV[1], nil)
return redis.call('LRANGE', KEYS[1], 0, -1)
`)

// putScript: KEYS[1] order list, KEYS[2] entry key.
// ARGV: key, payload, ttl in ms (0 for none), capacity, entry prefix.
// Returns the evicted keys.
var putScript = redis.NewScript(pruneLua + `
local order, entry = KEYS[1], KEYS[2]
local key, ttl, capacity, prefix = ARGV[1], tonumber(ARGV[3]), tonumber(ARGV[4]), ARGV[5]

prune(order, prefix, key)
redis.call('LREM', order, 0, key)
redis.call('RPUSH', order, key)
if ttl > 0 then
  redis.call('SET', entry, ARGV[2], 'PX', ttl)
else
  redis.call('SET', entry, ARGV[2])
end

local evicted = {}
while redis.call('LLEN', order) > capacity do
  local oldest = redis.call('LPOP', order)
  redis.call('DEL', prefix .. oldest)
  table.insert(evicted, oldest)
end
return evicted
`)
