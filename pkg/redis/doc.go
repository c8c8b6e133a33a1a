// Package redis connects the optional Redis session backend.
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	slot := session.NewRedisSlot(client, cfg.SessionKey, cfg.SessionTTL)
//
// Connect pings the server, retrying up to RetryAttempts times, so a
// misconfigured backend fails at startup instead of on the first request.
package redis
