package remote

import (
	"context"
	"errors"
	"strings"

	"cloud.google.com/go/firestore"
	"github.com/rs/zerolog"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"mavazimarket/internal/domain"
)

const (
	usersCollection   = "users"
	cartSubcollection = "cartItems"
	wishlistFieldName = "wishlist"
)

type firestoreStore struct {
	client *firestore.Client
	logger zerolog.Logger
}

// NewFirestore builds a Store over Firestore using the
// users/{userId}/cartItems/{itemId} layout with a wishlist array field on
// users/{userId}.
func NewFirestore(client *firestore.Client, logger zerolog.Logger) Store {
	return &firestoreStore{client: client, logger: logger}
}

func (s *firestoreStore) userDoc(userID string) *firestore.DocumentRef {
	return s.client.Collection(usersCollection).Doc(userID)
}

func (s *firestoreStore) cartCol(userID string) *firestore.CollectionRef {
	return s.userDoc(userID).Collection(cartSubcollection)
}

func (s *firestoreStore) LoadCart(ctx context.Context, userID string) ([]domain.CartItem, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}

	iter := s.cartCol(userID).Documents(ctx)
	defer iter.Stop()

	var items []domain.CartItem
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		item, ok := itemFromData(snap.Ref.ID, snap.Data())
		if !ok {
			s.logger.Warn().Str("user", userID).Str("doc", snap.Ref.ID).Msg("remote store: skipping malformed cart document")
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *firestoreStore) UpsertCartItem(ctx context.Context, userID string, item domain.CartItem) error {
	if err := requireUser(userID); err != nil {
		return err
	}
	if strings.TrimSpace(item.ID) == "" {
		return errors.New("remote store: cart item id is empty")
	}
	_, err := s.cartCol(userID).Doc(item.ID).Set(ctx, docFromItem(item))
	return err
}

func (s *firestoreStore) DeleteCartItem(ctx context.Context, userID, itemID string) error {
	if err := requireUser(userID); err != nil {
		return err
	}
	if strings.TrimSpace(itemID) == "" {
		return errors.New("remote store: cart item id is empty")
	}
	// Deleting an absent document succeeds; delete is idempotent here.
	_, err := s.cartCol(userID).Doc(itemID).Delete(ctx)
	return err
}

func (s *firestoreStore) ClearCart(ctx context.Context, userID string) error {
	if err := requireUser(userID); err != nil {
		return err
	}

	refs, err := s.cartCol(userID).DocumentRefs(ctx).GetAll()
	if err != nil {
		return err
	}
	if len(refs) == 0 {
		return nil
	}

	batch := s.client.Batch()
	for _, ref := range refs {
		batch.Delete(ref)
	}
	_, err = batch.Commit(ctx)
	return err
}

func (s *firestoreStore) MergeCart(ctx context.Context, userID string, items []domain.CartItem) error {
	if err := requireUser(userID); err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}

	batch := s.client.Batch()
	for _, item := range items {
		if strings.TrimSpace(item.ID) == "" {
			return errors.New("remote store: cart item id is empty")
		}
		batch.Set(s.cartCol(userID).Doc(item.ID), docFromItem(item))
	}
	_, err := batch.Commit(ctx)
	return err
}

func (s *firestoreStore) LoadWishlist(ctx context.Context, userID string) ([]string, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}

	snap, err := s.userDoc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}
	return wishlistFromData(snap.Data()), nil
}

func (s *firestoreStore) UnionWishlist(ctx context.Context, userID string, productIDs []string) error {
	if err := requireUser(userID); err != nil {
		return err
	}
	ids := nonEmpty(productIDs)
	if len(ids) == 0 {
		return nil
	}
	// Set with merge creates the profile document when it does not exist yet.
	_, err := s.userDoc(userID).Set(ctx, map[string]interface{}{
		wishlistFieldName: firestore.ArrayUnion(ids...),
	}, firestore.MergeAll)
	return err
}

func (s *firestoreStore) AddToWishlist(ctx context.Context, userID, productID string) error {
	return s.UnionWishlist(ctx, userID, []string{productID})
}

func (s *firestoreStore) RemoveFromWishlist(ctx context.Context, userID, productID string) error {
	if err := requireUser(userID); err != nil {
		return err
	}
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return nil
	}
	_, err := s.userDoc(userID).Update(ctx, []firestore.Update{
		{Path: wishlistFieldName, Value: firestore.ArrayRemove(productID)},
	})
	if err != nil && status.Code(err) == codes.NotFound {
		// No profile document means nothing to remove.
		return nil
	}
	return err
}

func requireUser(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return errors.New("remote store: user id is empty")
	}
	return nil
}

func nonEmpty(ids []string) []interface{} {
	var out []interface{}
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		out = append(out, id)
	}
	return out
}
