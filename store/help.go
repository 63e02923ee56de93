package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/floodrelief/relief-api/schema"
)

var (
	ErrRequestNotExist = fmt.Errorf("help request not found")
	ErrEmptyUpdate     = fmt.Errorf("nothing to update")
)

type HelpRequestStore interface {
	ListHelpRequests(ctx context.Context) ([]schema.HelpRequest, error)
	CreateHelpRequest(ctx context.Context, help schema.HelpRequest) error
	UpdateHelpRequest(ctx context.Context, id string, update schema.HelpRequestUpdate) (*schema.HelpRequest, error)
	DeleteHelpRequest(ctx context.Context, id string) error
	BulkCreateHelpRequests(ctx context.Context, helps []schema.HelpRequest) BulkResult
}

// ListHelpRequests returns every help request, newest first
func (m *mongoDB) ListHelpRequests(ctx context.Context) ([]schema.HelpRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := m.collection(schema.HelpRequestCollection).Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "ts", Value: -1}}))
	if err != nil {
		return nil, err
	}

	helps := []schema.HelpRequest{}
	if err := cur.All(ctx, &helps); err != nil {
		return nil, err
	}

	return helps, nil
}

func (m *mongoDB) CreateHelpRequest(ctx context.Context, help schema.HelpRequest) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := m.collection(schema.HelpRequestCollection).InsertOne(ctx, help)
	return err
}

// UpdateHelpRequest merges the non-nil fields of update into the request and
// returns the updated document.
func (m *mongoDB) UpdateHelpRequest(ctx context.Context, id string, update schema.HelpRequestUpdate) (*schema.HelpRequest, error) {
	if update.Empty() {
		return nil, ErrEmptyUpdate
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var help schema.HelpRequest
	err := m.collection(schema.HelpRequestCollection).FindOneAndUpdate(ctx,
		bson.M{"id": id},
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&help)
	if err != nil {
		if isNoDocuments(err) {
			return nil, ErrRequestNotExist
		}
		return nil, err
	}

	return &help, nil
}

func (m *mongoDB) DeleteHelpRequest(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := m.collection(schema.HelpRequestCollection).DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return ErrRequestNotExist
	}

	return nil
}

// BulkCreateHelpRequests inserts the requests in concurrent batches. Failed
// records are counted and skipped.
func (m *mongoDB) BulkCreateHelpRequests(ctx context.Context, helps []schema.HelpRequest) BulkResult {
	return insertInBatches(ctx, len(helps), func(ctx context.Context, i int) error {
		return m.CreateHelpRequest(ctx, helps[i])
	})
}
