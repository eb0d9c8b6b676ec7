package main

import (
	"github.com/hibiken/asynq"

	"lawfirm-backend/internal/config"
	"lawfirm-backend/internal/infrastructure/queue"
)

const serviceName = "lawfirm-worker"

// queuePriorities weights the queues the worker pulls from
var queuePriorities = map[string]int{
	queue.QueueDefault:     10,
	queue.QueueMaintenance: 5,
}

func redisOpt(cfg config.RedisConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.Host,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
}
