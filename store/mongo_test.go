package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/floodrelief/relief-api/consts"
	"github.com/floodrelief/relief-api/schema"
)

type MongoTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
	store        MongoStore
}

func NewMongoTestSuite(connURI, dbName string) *MongoTestSuite {
	return &MongoTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *MongoTestSuite) SetupSuite() {
	if s.connURI == "" || s.testDBName == "" {
		s.T().Fatal("invalid test suite configuration")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	opts := options.Client().ApplyURI(s.connURI).SetServerSelectionTimeout(2 * time.Second)
	mongoClient, err := mongo.Connect(ctx, opts)
	if nil != err {
		s.T().Skipf("connect mongo database with error: %s", err)
	}

	if err := mongoClient.Ping(ctx, nil); err != nil {
		s.T().Skipf("mongo database is not reachable: %s", err)
	}

	s.mongoClient = mongoClient
	s.testDatabase = mongoClient.Database(s.testDBName)
	s.store = NewMongoStore(mongoClient, s.testDBName)

	// make sure the test suite is run with a clean environment
	if err := s.CleanMongoDB(); err != nil {
		s.T().Fatal(err)
	}
	schema.NewMongoDBIndexer(mongoClient, s.testDBName).IndexAll()
}

func (s *MongoTestSuite) SetupTest() {
	ctx := context.Background()
	s.NoError(s.testDatabase.Collection(schema.HelpRequestCollection).Drop(ctx))
	s.NoError(s.testDatabase.Collection(schema.EvacueeCollection).Drop(ctx))
	schema.NewMongoDBIndexer(s.mongoClient, s.testDBName).IndexAll()
}

// CleanMongoDB drop the whole test mongodb
func (s *MongoTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

func (s *MongoTestSuite) TearDownSuite() {
	if s.mongoClient == nil {
		return
	}
	_ = s.CleanMongoDB()
	s.store.Close()
}

func newHelpRequest(name string, ts time.Time) schema.HelpRequest {
	return schema.HelpRequest{
		ID:           uuid.New().String(),
		Name:         name,
		Phone:        "0812345678",
		Location:     schema.Location{Address: "123 ซอยลาดพร้าว"},
		PeopleCount:  1,
		Needs:        []string{consts.NeedWater},
		Status:       schema.HelpPending,
		AssignedUnit: schema.UnitGeneral,
		Priority:     schema.PriorityNormal,
		Timestamp:    ts.UTC().Truncate(time.Millisecond),
	}
}

func (s *MongoTestSuite) TestListHelpRequestsNewestFirst() {
	ctx := context.Background()
	now := time.Now()

	s.NoError(s.store.CreateHelpRequest(ctx, newHelpRequest("old", now.Add(-time.Hour))))
	s.NoError(s.store.CreateHelpRequest(ctx, newHelpRequest("new", now)))

	helps, err := s.store.ListHelpRequests(ctx)
	s.NoError(err)
	s.Len(helps, 2)
	s.Equal("new", helps[0].Name)
	s.Equal("old", helps[1].Name)
}

func (s *MongoTestSuite) TestUpdateHelpRequest() {
	ctx := context.Background()
	help := newHelpRequest("สมชาย", time.Now())
	s.NoError(s.store.CreateHelpRequest(ctx, help))

	status := schema.HelpInProgress
	unit := schema.UnitWaterRescue
	updated, err := s.store.UpdateHelpRequest(ctx, help.ID, schema.HelpRequestUpdate{
		Status:       &status,
		AssignedUnit: &unit,
	})
	s.NoError(err)
	s.Equal(schema.HelpInProgress, updated.Status)
	s.Equal(schema.UnitWaterRescue, updated.AssignedUnit)
	s.Equal(help.Phone, updated.Phone)
	s.Equal(schema.PriorityNormal, updated.Priority)

	_, err = s.store.UpdateHelpRequest(ctx, "missing", schema.HelpRequestUpdate{Status: &status})
	s.Equal(ErrRequestNotExist, err)

	_, err = s.store.UpdateHelpRequest(ctx, help.ID, schema.HelpRequestUpdate{})
	s.Equal(ErrEmptyUpdate, err)
}

func (s *MongoTestSuite) TestDeleteHelpRequest() {
	ctx := context.Background()
	help := newHelpRequest("สมชาย", time.Now())
	s.NoError(s.store.CreateHelpRequest(ctx, help))

	s.NoError(s.store.DeleteHelpRequest(ctx, help.ID))
	s.Equal(ErrRequestNotExist, s.store.DeleteHelpRequest(ctx, help.ID))
}

func (s *MongoTestSuite) TestBulkCreateHelpRequestsCountsDuplicates() {
	ctx := context.Background()

	helps := make([]schema.HelpRequest, 0, 61)
	for i := 0; i < 60; i++ {
		helps = append(helps, newHelpRequest("bulk", time.Now()))
	}
	helps = append(helps, helps[0])

	result := s.store.BulkCreateHelpRequests(ctx, helps)
	s.Equal(60, result.SuccessCount)
	s.Equal(1, result.ErrorCount)
	s.NotEmpty(result.FirstError)

	count, err := s.testDatabase.Collection(schema.HelpRequestCollection).CountDocuments(ctx, bson.M{})
	s.NoError(err)
	s.Equal(int64(60), count)
}

func (s *MongoTestSuite) loadEvacuees() {
	evacuees := []schema.Evacuee{
		{ID: "e1", FirstName: "สมชาย", LastName: "ใจดี", Gender: "ชาย", District: "เมือง", Status: schema.EvacueeSafe},
		{ID: "e2", FirstName: "Somchai", LastName: "Rakdee", Gender: "ชาย", District: "หาดใหญ่", Status: schema.EvacueeSafe},
		{ID: "e3", FirstName: "สมหญิง", LastName: "ใจดี", Gender: "หญิง", District: "เมือง", Status: schema.EvacueeSafe},
		{ID: "e4", FirstName: "ลบแล้ว", LastName: "ใจดี", Gender: "หญิง", District: "เมือง", Status: schema.EvacueeDeleted},
	}

	result := s.store.BulkInsertEvacuees(context.Background(), evacuees)
	s.Equal(4, result.SuccessCount)
}

func (s *MongoTestSuite) TestSearchEvacuees() {
	s.loadEvacuees()
	ctx := context.Background()

	all, err := s.store.SearchEvacuees(ctx, "")
	s.NoError(err)
	s.Len(all, 3)

	byLastName, err := s.store.SearchEvacuees(ctx, "ใจดี")
	s.NoError(err)
	s.Len(byLastName, 2)

	caseless, err := s.store.SearchEvacuees(ctx, "somCHAI")
	s.NoError(err)
	s.Len(caseless, 1)
	s.Equal("e2", caseless[0].ID)

	literal, err := s.store.SearchEvacuees(ctx, "(.*)")
	s.NoError(err)
	s.Empty(literal)
}

func (s *MongoTestSuite) TestEvacueeStats() {
	s.loadEvacuees()

	stats, err := s.store.EvacueeStats(context.Background())
	s.NoError(err)
	s.Equal(3, stats.Total)
	s.Equal([]schema.GenderCount{
		{Gender: "ชาย", Count: 2},
		{Gender: "หญิง", Count: 1},
	}, stats.ByGender)
	s.Equal([]schema.DistrictCount{
		{District: "เมือง", Count: 2},
		{District: "หาดใหญ่", Count: 1},
	}, stats.ByDistrict)
}

func TestMongoTestSuite(t *testing.T) {
	suite.Run(t, NewMongoTestSuite("mongodb://127.0.0.1:27017/?compressors=disabled", "test-relief-db"))
}
