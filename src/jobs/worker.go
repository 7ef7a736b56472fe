package jobs

import (
	"context"
	"encoding/json"
	"log"

	"Backend-CorpsConnect/src/database"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// HandleExpireQrSessionTask flips a session inactive once its window
// closes. Scans also check expiresAt, so this is cleanup, not the gate.
func HandleExpireQrSessionTask(ctx context.Context, t *asynq.Task) error {
	var payload QrSessionPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Println("Payload decode error:", err)
		return err
	}

	id, err := primitive.ObjectIDFromHex(payload.SessionID)
	if err != nil {
		return err
	}

	var session bson.M
	err = database.QrSessionCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&session)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			log.Println("QR session not found, possibly deleted. Skipping task:", id.Hex())
			return nil
		}
		return err
	}

	_, err = database.QrSessionCollection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"isActive": false}},
	)
	if err != nil {
		log.Println("Failed to deactivate QR session:", err)
		return err
	}

	log.Println("QR session deactivated:", id.Hex())
	return nil
}

// StartWorker runs the Asynq server in the background when Redis is
// configured.
func StartWorker() {
	if database.RedisURI == "" || database.RedisClient == nil {
		log.Println("Redis not available. Background worker will not start.")
		return
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: database.RedisURI},
		asynq.Config{Concurrency: 5},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeExpireQrSession, HandleExpireQrSessionTask)

	go func() {
		if err := srv.Run(mux); err != nil {
			log.Println("Asynq worker stopped:", err)
		}
	}()
}
