package storage

import (
	"context"
	"time"

	"waymark/db"
	"waymark/models"
	"waymark/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore is the durable Store backed by the db package's collections.
type MongoStore struct{}

func NewMongoStore() *MongoStore {
	return &MongoStore{}
}

func mapMongoErr(err error) error {
	if err == mongo.ErrNoDocuments {
		return ErrNotFound
	}
	return err
}

// --- Users ---

func (s *MongoStore) GetUser(ctx context.Context, id string) (models.User, error) {
	var u models.User
	err := db.UserCollection.FindOne(ctx, bson.M{"userid": id}).Decode(&u)
	return u, mapMongoErr(err)
}

func (s *MongoStore) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	var u models.User
	err := db.UserCollection.FindOne(ctx, bson.M{"username": username}).Decode(&u)
	return u, mapMongoErr(err)
}

func (s *MongoStore) CreateUser(ctx context.Context, u models.User) (models.User, error) {
	if u.UserID == "" {
		u.UserID = "u" + utils.GenerateID(10)
	}
	_, err := db.UserCollection.InsertOne(ctx, u)
	return u, err
}

func (s *MongoStore) UpdateUserPassword(ctx context.Context, id, passwordHash string) error {
	res, err := db.UserCollection.UpdateOne(ctx,
		bson.M{"userid": id},
		bson.M{"$set": bson.M{"password": passwordHash}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// --- Locations ---

func (s *MongoStore) ListLocations(ctx context.Context) ([]models.Location, error) {
	cursor, err := db.LocationsCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var locations []models.Location
	if err := cursor.All(ctx, &locations); err != nil {
		return nil, err
	}
	if locations == nil {
		locations = []models.Location{}
	}
	return locations, nil
}

func (s *MongoStore) GetLocation(ctx context.Context, id string) (models.Location, error) {
	var loc models.Location
	err := db.LocationsCollection.FindOne(ctx, bson.M{"locationid": id}).Decode(&loc)
	return loc, mapMongoErr(err)
}

func (s *MongoStore) CreateLocation(ctx context.Context, loc models.Location) (models.Location, error) {
	if loc.LocationID == "" {
		loc.LocationID = "l" + utils.GenerateID(14)
	}
	if loc.CustomFields == "" {
		loc.CustomFields = "{}"
	}
	_, err := db.LocationsCollection.InsertOne(ctx, loc)
	return loc, err
}

func (s *MongoStore) UpdateLocation(ctx context.Context, id string, upd models.LocationUpdate) (models.Location, error) {
	res := db.LocationsCollection.FindOneAndUpdate(ctx,
		bson.M{"locationid": id},
		bson.M{"$set": upd},
		options.FindOneAndUpdate().SetReturnDocument(options.After))

	var loc models.Location
	if err := res.Decode(&loc); err != nil {
		return models.Location{}, mapMongoErr(err)
	}
	return loc, nil
}

func (s *MongoStore) DeleteLocation(ctx context.Context, id string) error {
	res, err := db.LocationsCollection.DeleteOne(ctx, bson.M{"locationid": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// --- Media ---

func (s *MongoStore) ListMedia(ctx context.Context) ([]models.Media, error) {
	opts := options.Find().SetSort(bson.D{{Key: "uploaded_at", Value: -1}})
	cursor, err := db.MediaCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var media []models.Media
	if err := cursor.All(ctx, &media); err != nil {
		return nil, err
	}
	if media == nil {
		media = []models.Media{}
	}
	return media, nil
}

func (s *MongoStore) GetMedia(ctx context.Context, id string) (models.Media, error) {
	var m models.Media
	err := db.MediaCollection.FindOne(ctx, bson.M{"mediaid": id}).Decode(&m)
	return m, mapMongoErr(err)
}

func (s *MongoStore) CreateMedia(ctx context.Context, m models.Media) (models.Media, error) {
	if m.MediaID == "" {
		m.MediaID = "m" + utils.GenerateID(16)
	}
	if m.UploadedAt.IsZero() {
		m.UploadedAt = time.Now()
	}
	_, err := db.MediaCollection.InsertOne(ctx, m)
	return m, err
}

func (s *MongoStore) UpdateMedia(ctx context.Context, id string, upd models.MediaUpdate) (models.Media, error) {
	res := db.MediaCollection.FindOneAndUpdate(ctx,
		bson.M{"mediaid": id},
		bson.M{"$set": upd},
		options.FindOneAndUpdate().SetReturnDocument(options.After))

	var m models.Media
	if err := res.Decode(&m); err != nil {
		return models.Media{}, mapMongoErr(err)
	}
	return m, nil
}

func (s *MongoStore) DeleteMedia(ctx context.Context, id string) error {
	res, err := db.MediaCollection.DeleteOne(ctx, bson.M{"mediaid": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// --- Settings ---

func (s *MongoStore) ListSettings(ctx context.Context) ([]models.Setting, error) {
	cursor, err := db.SettingsCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var settings []models.Setting
	if err := cursor.All(ctx, &settings); err != nil {
		return nil, err
	}
	if settings == nil {
		settings = []models.Setting{}
	}
	return settings, nil
}

func (s *MongoStore) GetSetting(ctx context.Context, key string) (models.Setting, error) {
	var setting models.Setting
	err := db.SettingsCollection.FindOne(ctx, bson.M{"key": key}).Decode(&setting)
	return setting, mapMongoErr(err)
}

func (s *MongoStore) SetSetting(ctx context.Context, setting models.Setting) (models.Setting, error) {
	setting.UpdatedAt = time.Now()
	opts := options.Update().SetUpsert(true)
	_, err := db.SettingsCollection.UpdateOne(ctx,
		bson.M{"key": setting.Key},
		bson.M{"$set": setting},
		opts)
	return setting, err
}

// --- Categories ---

func (s *MongoStore) ListCategories(ctx context.Context) ([]models.Category, error) {
	opts := options.Find().SetSort(bson.D{{Key: "displayorder", Value: 1}})
	cursor, err := db.CategoriesCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var categories []models.Category
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []models.Category{}
	}
	return categories, nil
}

func (s *MongoStore) GetCategory(ctx context.Context, id string) (models.Category, error) {
	var cat models.Category
	err := db.CategoriesCollection.FindOne(ctx, bson.M{"categoryid": id}).Decode(&cat)
	return cat, mapMongoErr(err)
}

func (s *MongoStore) GetCategoryBySlug(ctx context.Context, slug string) (models.Category, error) {
	var cat models.Category
	err := db.CategoriesCollection.FindOne(ctx, bson.M{"slug": slug}).Decode(&cat)
	return cat, mapMongoErr(err)
}

func (s *MongoStore) CreateCategory(ctx context.Context, cat models.Category) (models.Category, error) {
	if cat.CategoryID == "" {
		cat.CategoryID = "c" + utils.GenerateID(12)
	}
	now := time.Now()
	cat.CreatedAt = now
	cat.UpdatedAt = now
	_, err := db.CategoriesCollection.InsertOne(ctx, cat)
	return cat, err
}

func (s *MongoStore) UpdateCategory(ctx context.Context, id string, upd models.CategoryUpdate) (models.Category, error) {
	set := bson.M{"updated_at": time.Now()}
	doc, err := bson.Marshal(upd)
	if err != nil {
		return models.Category{}, err
	}
	var fields bson.M
	if err := bson.Unmarshal(doc, &fields); err != nil {
		return models.Category{}, err
	}
	for k, v := range fields {
		set[k] = v
	}

	res := db.CategoriesCollection.FindOneAndUpdate(ctx,
		bson.M{"categoryid": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After))

	var cat models.Category
	if err := res.Decode(&cat); err != nil {
		return models.Category{}, mapMongoErr(err)
	}
	return cat, nil
}

func (s *MongoStore) DeleteCategory(ctx context.Context, id string) error {
	res, err := db.CategoriesCollection.DeleteOne(ctx, bson.M{"categoryid": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
