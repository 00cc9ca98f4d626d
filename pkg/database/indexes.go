package database

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func createIndexes() {
	createOrdersIndexes()
	createEmergencyIndexes()
}

func createOrdersIndexes() {
	ordersCollection := GetCollection("orders")
	ordersIndex := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "pnr", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "created_at", Value: 1}},
		},
	}

	opts := options.CreateIndexes()
	_, err := ordersCollection.Indexes().CreateMany(context.Background(), ordersIndex, opts)
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}
}

func createEmergencyIndexes() {
	emergencyCollection := GetCollection("emergency")
	emergencyIndex := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "pnr", Value: 1}},
		},
	}

	opts := options.CreateIndexes()
	_, err := emergencyCollection.Indexes().CreateMany(context.Background(), emergencyIndex, opts)
	if err != nil {
		log.Error().Err(err).Msg("Creating Index")
	}
}
