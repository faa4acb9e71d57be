package mongo

import (
	"context"

	"key-catalog/internal/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type DB struct {
	client   *mongo.Client
	database *mongo.Database
}

func New(cfg *config.MongoConfig) (*DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), dbConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, errFailedConnectDatabase(err)
	}

	pingCtx, pingCancel := context.WithTimeout(context.Background(), dbPingTimeout)
	defer pingCancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, errFailedPingDatabase(err)
	}

	return &DB{
		client:   client,
		database: client.Database(cfg.Database),
	}, nil
}

func (db *DB) Close(ctx context.Context) error {
	return db.client.Disconnect(ctx)
}

func (db *DB) Collection(name string) *mongo.Collection {
	return db.database.Collection(name)
}

// EnsureIndexes creates the uniqueness and lookup indexes the resource
// collections rely on. Name uniqueness uses collation strength 2 so "acme"
// and "ACME" collide.
func (db *DB) EnsureIndexes(ctx context.Context) error {
	caseInsensitive := options.Collation{Locale: collationLocale, Strength: collationStrengthCaseInsensitive}

	brandIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: fieldName, Value: 1}},
			Options: options.Index().SetUnique(true).SetCollation(&caseInsensitive),
		},
	}

	modelIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: fieldBrandID, Value: 1}, {Key: fieldName, Value: 1}},
			Options: options.Index().SetUnique(true).SetCollation(&caseInsensitive),
		},
	}

	variantIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: fieldBrandID, Value: 1}}},
		{Keys: bson.D{{Key: fieldModelID, Value: 1}}},
	}

	if _, err := db.Collection(collectionBrands).Indexes().CreateMany(ctx, brandIndexes); err != nil {
		return errFailedCreateIndexes(err)
	}

	if _, err := db.Collection(collectionModels).Indexes().CreateMany(ctx, modelIndexes); err != nil {
		return errFailedCreateIndexes(err)
	}

	if _, err := db.Collection(collectionVariants).Indexes().CreateMany(ctx, variantIndexes); err != nil {
		return errFailedCreateIndexes(err)
	}

	return nil
}
