package repositories

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sbilibin2017/bizlink/internal/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func unique(name string, keys bson.D) mongo.IndexModel {
	return mongo.IndexModel{Keys: keys, Options: options.Index().SetName(name).SetUnique(true)}
}

func lookup(name string, keys bson.D) mongo.IndexModel {
	return mongo.IndexModel{Keys: keys, Options: options.Index().SetName(name)}
}

func key(field string) bson.D {
	return bson.D{{Key: field, Value: 1}}
}

// indexes lists the indexes of every collection. Unique indexes are the
// authoritative guard for natural keys.
var indexes = map[string][]mongo.IndexModel{
	UsersCollection: {
		unique("user_id_unique", key("user_id")),
		unique("username_unique", key("username")),
		unique("email_unique", key("email")),
	},
	ProfilesCollection: {
		unique("profile_id_unique", key("profile_id")),
		unique("user_id_unique", key("user_id")),
		unique("email_unique", key("email")),
		lookup("username", key("username")),
	},
	BusinessesCollection: {
		unique("business_id_unique", key("business_id")),
		unique("name_unique", key("name")),
		lookup("user_ids", key("user_ids")),
	},
	PaymentsCollection: {
		unique("payment_id_unique", key("payment_id")),
		lookup("purchaser_id", key("purchaser_id")),
		lookup("seller_id", key("seller_id")),
	},
	TrainingsCollection: {
		unique("training_id_unique", key("training_id")),
		lookup("trainer_id", key("trainer_id")),
	},
	MessagesCollection: {
		unique("message_id_unique", key("message_id")),
		lookup("sender", key("sender")),
		lookup("receiver", key("receiver")),
	},
	NotificationsCollection: {
		unique("notification_id_unique", key("notification_id")),
		unique("natural_key_unique", bson.D{
			{Key: "notification_type", Value: 1},
			{Key: "user_id", Value: 1},
			{Key: "message", Value: 1},
			{Key: "created_at", Value: 1},
		}),
		lookup("user_id", key("user_id")),
	},
	ReviewsCollection: {
		unique("review_id_unique", key("review_id")),
		lookup("target", bson.D{{Key: "target_type", Value: 1}, {Key: "target_id", Value: 1}}),
	},
}

// EnsureIndexes creates the indexes of every collection. Existing indexes with
// the same definition are left untouched.
func EnsureIndexes(ctx context.Context, s *Store) error {
	for name, specs := range indexes {
		created, err := s.collection(name).Indexes().CreateMany(ctx, specs)

		logger.Log.Infow(
			"query", name+".createIndexes",
			"result", created,
			"error", err,
		)

		if err != nil {
			return errors.Wrapf(err, "create indexes on %s", name)
		}
	}
	return nil
}
