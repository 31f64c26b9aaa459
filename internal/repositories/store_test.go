package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/sbilibin2017/bizlink/internal/identity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func setupMongoContainer(t *testing.T) (*mongo.Database, func()) {
	t.Helper()
	ctx := context.Background()

	req := tc.ContainerRequest{
		Image:        "mongo:7",
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor:   wait.ForListeningPort("27017/tcp"),
	}

	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, _ := container.Host(ctx)
	port, _ := container.MappedPort(ctx, "27017")

	uri := fmt.Sprintf("mongodb://%s:%s", host, port.Port())

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		if err = client.Ping(ctx, nil); err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)

	db := client.Database("bizlink_test")

	teardown := func() {
		client.Disconnect(context.Background())
		container.Terminate(context.Background())
	}

	return db, teardown
}

func newTestStore(t *testing.T, db *mongo.Database) *Store {
	t.Helper()
	s := NewStore(db, identity.Codec{Encoding: identity.EncodingBinary}, 5*time.Second)
	require.NoError(t, EnsureIndexes(context.Background(), s))
	return s
}

func TestEnsureIndexes_Idempotent(t *testing.T) {
	db, teardown := setupMongoContainer(t)
	defer teardown()

	s := NewStore(db, identity.Codec{}, time.Second)
	ctx := context.Background()

	assert.NoError(t, EnsureIndexes(ctx, s))
	assert.NoError(t, EnsureIndexes(ctx, s))

	specs, err := db.Collection(UsersCollection).Indexes().ListSpecifications(ctx)
	require.NoError(t, err)

	names := make([]string, 0, len(specs))
	for _, spec := range specs {
		names = append(names, spec.Name)
	}
	assert.Contains(t, names, "username_unique")
	assert.Contains(t, names, "user_id_unique")
	assert.Contains(t, names, "email_unique")
}
