package store

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/floodrelief/relief-api/consts"
	"github.com/floodrelief/relief-api/schema"
)

type EvacueeStore interface {
	SearchEvacuees(ctx context.Context, query string) ([]schema.Evacuee, error)
	EvacueeStats(ctx context.Context) (*schema.EvacueeStats, error)
	InsertEvacuee(ctx context.Context, evacuee schema.Evacuee) error
	BulkInsertEvacuees(ctx context.Context, evacuees []schema.Evacuee) BulkResult
}

func matchActiveEvacuees() bson.M {
	return bson.M{"status": bson.M{"$ne": schema.EvacueeDeleted}}
}

// SearchEvacuees returns evacuees not marked deleted whose first or last name
// contains query, ignoring case.
func (m *mongoDB) SearchEvacuees(ctx context.Context, query string) ([]schema.Evacuee, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := matchActiveEvacuees()
	if query != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"first_name": pattern},
			bson.M{"last_name": pattern},
		}
	}

	cur, err := m.collection(schema.EvacueeCollection).Find(ctx, filter,
		options.Find().SetLimit(consts.EvacueeSearchLimit))
	if err != nil {
		return nil, err
	}

	evacuees := []schema.Evacuee{}
	if err := cur.All(ctx, &evacuees); err != nil {
		return nil, err
	}

	return evacuees, nil
}

func aggStageGroupCount(field string) bson.A {
	return bson.A{
		bson.M{"$match": matchActiveEvacuees()},
		bson.M{"$group": bson.M{
			"_id":   bson.M{"$ifNull": bson.A{"$" + field, ""}},
			"count": bson.M{"$sum": 1},
		}},
		bson.M{"$sort": bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}},
	}
}

// EvacueeStats counts active evacuees in total and grouped by gender and by
// district.
func (m *mongoDB) EvacueeStats(ctx context.Context) (*schema.EvacueeStats, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c := m.collection(schema.EvacueeCollection)

	total, err := c.CountDocuments(ctx, matchActiveEvacuees())
	if err != nil {
		return nil, err
	}

	stats := schema.EvacueeStats{
		Total:      int(total),
		ByGender:   []schema.GenderCount{},
		ByDistrict: []schema.DistrictCount{},
	}

	if err := aggregateInto(ctx, c, aggStageGroupCount("gender"), &stats.ByGender); err != nil {
		return nil, err
	}

	if err := aggregateInto(ctx, c, aggStageGroupCount("district"), &stats.ByDistrict); err != nil {
		return nil, err
	}

	return &stats, nil
}

func aggregateInto(ctx context.Context, c *mongo.Collection, pipeline bson.A, results interface{}) error {
	cur, err := c.Aggregate(ctx, pipeline)
	if err != nil {
		return err
	}
	return cur.All(ctx, results)
}

func (m *mongoDB) InsertEvacuee(ctx context.Context, evacuee schema.Evacuee) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := m.collection(schema.EvacueeCollection).InsertOne(ctx, evacuee)
	return err
}

func (m *mongoDB) BulkInsertEvacuees(ctx context.Context, evacuees []schema.Evacuee) BulkResult {
	return insertInBatches(ctx, len(evacuees), func(ctx context.Context, i int) error {
		return m.InsertEvacuee(ctx, evacuees[i])
	})
}
