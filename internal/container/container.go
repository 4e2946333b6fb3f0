package container

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"filebox/config"
	"filebox/internal/infrastructure/blob"
	"filebox/internal/infrastructure/queue"
)

// app-level container to share constructed components across packages.
// Everything is set once in main at process start; the router auto-wires
// modules from these handles.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	pgPool      *pgxpool.Pool
	redisClient *redis.Client
	blobStore   *blob.Store
	publisher   *queue.Publisher
)

func SetConfig(c *config.Config)       { cfg = c }
func GetConfig() *config.Config        { return cfg }
func SetLogger(l *logrus.Logger)       { logger = l }
func GetLogger() *logrus.Logger        { return logger }
func SetPGPool(p *pgxpool.Pool)        { pgPool = p }
func GetPGPool() *pgxpool.Pool         { return pgPool }
func SetRedis(r *redis.Client)         { redisClient = r }
func GetRedis() *redis.Client          { return redisClient }
func SetBlobStore(s *blob.Store)       { blobStore = s }
func GetBlobStore() *blob.Store        { return blobStore }
func SetPublisher(p *queue.Publisher)  { publisher = p }
func GetPublisher() *queue.Publisher   { return publisher }
