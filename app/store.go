package main

import (
	"context"
	"time"

	"github.com/sushihentaime/bloglist/internal/blogservice"
	"github.com/sushihentaime/bloglist/internal/common"
	"github.com/sushihentaime/bloglist/internal/userservice"
)

// stores holds the blog and user stores of one backend, so user references
// always point into the database that holds the blogs.
type stores struct {
	blogs blogservice.BlogStore
	users userservice.UserStore
}

// openStores connects the configured backend. The returned func releases it.
func openStores(cfg *Config) (*stores, func() error, error) {
	switch cfg.StoreDriver {
	case storeDriverPostgres:
		db, err := common.NewDB(cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, 10, 5, 15*time.Minute)
		if err != nil {
			return nil, nil, err
		}

		m, err := common.Migrate(cfg.MigrationsPath, common.PostgresURI(cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName))
		if err != nil {
			common.CloseDB(db)
			return nil, nil, err
		}
		m.Close()

		s := &stores{
			blogs: blogservice.NewPostgresBlogModel(db),
			users: userservice.NewPostgresUserModel(db),
		}

		return s, func() error { return common.CloseDB(db) }, nil
	default:
		client, err := common.NewMongo(cfg.MongoURL)
		if err != nil {
			return nil, nil, err
		}

		database := client.Database(cfg.MongoDatabase)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		users, err := userservice.NewMongoUserModel(ctx, database)
		if err != nil {
			common.CloseMongo(client)
			return nil, nil, err
		}

		s := &stores{
			blogs: blogservice.NewMongoBlogModel(database),
			users: users,
		}

		return s, func() error { return common.CloseMongo(client) }, nil
	}
}
