package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCollection adapts one MongoDB collection to the Collection contract.
// Booking documents carry ObjectID ids; profile documents keep the external
// caller identity as their raw _id, so lookups accept both forms.
type MongoCollection struct {
	col *mongo.Collection
	now func() time.Time
}

func NewMongoCollection(col *mongo.Collection) *MongoCollection {
	return &MongoCollection{col: col, now: time.Now}
}

func (m *MongoCollection) Get(ctx context.Context, id string) (Fields, error) {
	var doc bson.M
	err := m.col.FindOne(ctx, bson.M{"_id": idValue(id)}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return fromBSON(doc), nil
}

func (m *MongoCollection) Add(ctx context.Context, fields Fields) (string, error) {
	doc := make(bson.M, len(fields)+1)
	for k, v := range fields {
		doc[k] = v
	}
	doc["createdAt"] = primitive.NewDateTimeFromTime(m.now().UTC())
	res, err := m.col.InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("identifiant inséré inattendu")
	}
	return oid.Hex(), nil
}

func (m *MongoCollection) Query(ctx context.Context, orderBy string, descending bool) ([]Record, error) {
	dir := 1
	if descending {
		dir = -1
	}
	cur, err := m.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: orderBy, Value: dir}}))
	if err != nil {
		return nil, err
	}
	return collect(ctx, cur)
}

func (m *MongoCollection) Find(ctx context.Context, field string, value any) ([]Record, error) {
	cur, err := m.col.Find(ctx, bson.M{field: value})
	if err != nil {
		return nil, err
	}
	return collect(ctx, cur)
}

func (m *MongoCollection) Update(ctx context.Context, id string, fields Fields) error {
	set := make(bson.M, len(fields)+1)
	for k, v := range fields {
		set[k] = v
	}
	set["updatedAt"] = primitive.NewDateTimeFromTime(m.now().UTC())
	res, err := m.col.UpdateOne(ctx, bson.M{"_id": idValue(id)}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoCollection) Delete(ctx context.Context, id string) error {
	res, err := m.col.DeleteOne(ctx, bson.M{"_id": idValue(id)})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func collect(ctx context.Context, cur *mongo.Cursor) ([]Record, error) {
	defer cur.Close(ctx)
	var out []Record
	for cur.Next(ctx) {
		var doc bson.M
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, Record{ID: docID(doc), Fields: fromBSON(doc)})
	}
	return out, cur.Err()
}

func idValue(id string) any {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return oid
	}
	return id
}

func docID(doc bson.M) string {
	switch v := doc["_id"].(type) {
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	}
	return ""
}

// fromBSON strips the _id and normalizes driver types so callers see plain
// Go values.
func fromBSON(doc bson.M) Fields {
	f := make(Fields, len(doc))
	for k, v := range doc {
		if k == "_id" {
			continue
		}
		if dt, ok := v.(primitive.DateTime); ok {
			f[k] = dt.Time().UTC()
			continue
		}
		f[k] = v
	}
	return f
}
