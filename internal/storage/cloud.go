package storage

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/MelEUsher/Recipe-Manager/internal/model"
)

// Cloud connects to a networked PostgreSQL or MySQL server through a bounded,
// recycled connection pool. The descriptor is validated up front so a typo in
// deployment config fails at startup with a readable message instead of on
// the first request.
type Cloud struct {
	summary string // scheme://host:port/db, no credentials
	db      *gorm.DB
}

// descriptor is the parsed, validated form of a cloud connection URL.
type descriptor struct {
	scheme   string
	user     string
	password string
	host     string
	port     int
	database string
	query    url.Values
}

// parseDescriptor validates a postgres:// or mysql:// URL. Scheme,
// credentials, host, port and database name are all mandatory.
func parseDescriptor(raw string) (*descriptor, error) {
	if raw == "" {
		return nil, fmt.Errorf("connection descriptor is required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("malformed connection descriptor: %w", err)
	}

	switch u.Scheme {
	case "postgres", "postgresql", "mysql":
	default:
		return nil, fmt.Errorf("unsupported database scheme %q (want postgres:// or mysql://)", u.Scheme)
	}
	if u.User == nil || u.User.Username() == "" {
		return nil, fmt.Errorf("connection descriptor must include a username")
	}
	password, _ := u.User.Password()
	if password == "" {
		return nil, fmt.Errorf("connection descriptor must include a password")
	}
	if u.Hostname() == "" {
		return nil, fmt.Errorf("connection descriptor must include a host")
	}
	if u.Port() == "" {
		return nil, fmt.Errorf("connection descriptor must include a port")
	}
	port, err := parsePort(u.Port())
	if err != nil {
		return nil, err
	}
	database := ""
	if len(u.Path) > 1 {
		database = u.Path[1:]
	}
	if database == "" {
		return nil, fmt.Errorf("connection descriptor must include a database name")
	}

	return &descriptor{
		scheme:   u.Scheme,
		user:     u.User.Username(),
		password: password,
		host:     u.Hostname(),
		port:     port,
		database: database,
		query:    u.Query(),
	}, nil
}

func parsePort(s string) (int, error) {
	var port int
	if _, err := fmt.Sscanf(s, "%d", &port); err != nil || port <= 0 || port > 65535 {
		return 0, fmt.Errorf("connection descriptor has an invalid port %q", s)
	}
	return port, nil
}

// dialector builds the driver-specific DSN. MySQL does not take URL form.
func (d *descriptor) dialector(raw string) gorm.Dialector {
	if d.scheme == "mysql" {
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			d.user, d.password, d.host, d.port, d.database)
		return mysql.Open(dsn)
	}
	return postgres.Open(raw)
}

// NewCloud validates the descriptor, opens the pool and verifies the server
// is reachable.
func NewCloud(raw string) (*Cloud, error) {
	d, err := parseDescriptor(raw)
	if err != nil {
		return nil, err
	}
	summary := fmt.Sprintf("%s://%s:%d/%s", d.scheme, d.host, d.port, d.database)

	db, err := gorm.Open(d.dialector(raw), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		log.Error().Err(err).Str("db", summary).Msg("failed to open cloud database")
		return nil, fmt.Errorf("open %s: %w", summary, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// Bounded pool with recycling. Idle connections are cycled out hourly so
	// server-side timeouts and failovers do not strand stale sockets.
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		log.Error().Err(err).Str("db", summary).Msg("cloud database unreachable")
		return nil, fmt.Errorf("ping %s: %w", summary, err)
	}

	log.Info().Str("db", summary).Msg("cloud storage ready")
	return &Cloud{summary: summary, db: db}, nil
}

func (c *Cloud) DB() *gorm.DB { return c.db }

func (c *Cloud) Initialize() error {
	return c.db.AutoMigrate(
		&model.Category{},
		&model.Recipe{},
		&model.Ingredient{},
	)
}

func (c *Cloud) HealthCheck(ctx context.Context) bool {
	sqlDB, err := c.db.DB()
	if err != nil {
		log.Error().Err(err).Str("db", c.summary).Msg("cloud health check failed")
		return false
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		log.Error().Err(err).Str("db", c.summary).Msg("cloud health check failed")
		return false
	}
	return true
}

func (c *Cloud) Close() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return nil
	}
	return sqlDB.Close()
}
