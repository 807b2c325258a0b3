package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cafehub/menu-api/internal/core/domain"
)

const collectionDrinks = "drinks"

type DrinkRepository struct {
	col *mongo.Collection
}

func NewDrinkRepository(db *mongo.Database) *DrinkRepository {
	return &DrinkRepository{col: db.Collection(collectionDrinks)}
}

type drinkDoc struct {
	ID    primitive.ObjectID `bson:"_id,omitempty"`
	Name  string             `bson:"name"`
	ML    string             `bson:"ml"`
	Price float64            `bson:"price"`
}

func (d *drinkDoc) toDomain() *domain.Drink {
	return &domain.Drink{ID: d.ID.Hex(), Name: d.Name, ML: d.ML, Price: d.Price}
}

func (r *DrinkRepository) Create(ctx context.Context, drink *domain.Drink) (*domain.Drink, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, drinkDoc{Name: drink.Name, ML: drink.ML, Price: drink.Price})
	if err != nil {
		return nil, fmt.Errorf("insert drink: %w", err)
	}

	created := *drink
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *DrinkRepository) FindByID(ctx context.Context, id string) (*domain.Drink, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrDrinkNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc drinkDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrDrinkNotFound
		}
		return nil, fmt.Errorf("find drink: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *DrinkRepository) FindAll(ctx context.Context) ([]domain.Drink, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list drinks: %w", err)
	}
	defer cursor.Close(ctx)

	var drinks []domain.Drink
	for cursor.Next(ctx) {
		var doc drinkDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode drink: %w", err)
		}
		drinks = append(drinks, *doc.toDomain())
	}
	return drinks, cursor.Err()
}

func (r *DrinkRepository) Update(ctx context.Context, drink *domain.Drink) (*domain.Drink, error) {
	oid, err := primitive.ObjectIDFromHex(drink.ID)
	if err != nil {
		return nil, domain.ErrDrinkNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateByID(ctx, oid, bson.M{"$set": bson.M{
		"name":  drink.Name,
		"ml":    drink.ML,
		"price": drink.Price,
	}})
	if err != nil {
		return nil, fmt.Errorf("update drink: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrDrinkNotFound
	}
	return drink, nil
}

func (r *DrinkRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrDrinkNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete drink: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrDrinkNotFound
	}
	return nil
}
