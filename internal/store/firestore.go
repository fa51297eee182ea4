package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go"
	"github.com/MKhiriev/go-fleet-logbook/internal/config"
	"github.com/MKhiriev/go-fleet-logbook/internal/logger"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Firestore collection names.
const (
	usersCollection     = "users"
	sectorsCollection   = "sectors"
	logsCollection      = "logs"
	statsCollection     = "monthlyStats"
	vehiclesCollection  = "vehicles"
	workshopsCollection = "workshops"
	stationsCollection  = "fuelStations"
)

// nowUTC stamps documents written by the Firestore repositories.
var nowUTC = func() time.Time { return time.Now().UTC() }

// NewFirebaseApp initializes the Firebase app for the configured project.
// Without a credentials file, application default credentials are used.
func NewFirebaseApp(ctx context.Context, cfg config.Firebase) (*firebase.App, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing Firebase app: %w", err)
	}

	return app, nil
}

// NewConnectFirestore opens a Firestore client on app.
func NewConnectFirestore(ctx context.Context, app *firebase.App, log *logger.Logger) (*firestore.Client, error) {
	client, err := app.Firestore(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectFirestore").Msg("error initializing Firestore client")
		return nil, fmt.Errorf("error initializing Firestore client: %w", err)
	}
	log.Info().Str("func", "NewConnectFirestore").Msg("connected to Firestore successfully")

	return client, nil
}

// docError translates Firestore status codes into the package sentinels.
func docError(ctx context.Context, op string, err error) error {
	switch status.Code(err) {
	case codes.NotFound:
		return ErrNotFound
	case codes.AlreadyExists:
		return ErrAlreadyExists
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrAlreadyExists) {
		return err
	}

	logger.FromContext(ctx).Err(err).Str("op", op).Msg("document store call failed")
	return fmt.Errorf("%w: %s: %w", ErrDocumentStore, op, err)
}

// collect drains iter decoding every document into T.
func collect[T any](iter *firestore.DocumentIterator) ([]T, error) {
	defer iter.Stop()

	result := make([]T, 0)
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}

		var item T
		if err := doc.DataTo(&item); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrScanningRows, doc.Ref.ID, err)
		}
		result = append(result, item)
	}

	return result, nil
}

// existsOther reports whether q matches a document other than selfID.
func existsOther(docs []*firestore.DocumentSnapshot, selfID string) bool {
	for _, d := range docs {
		if d.Ref.ID != selfID {
			return true
		}
	}
	return false
}
