package documentStore

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/avitale/VillageGuideAPI/internal/config"
	"github.com/avitale/VillageGuideAPI/internal/data/redisStore"
	"github.com/avitale/VillageGuideAPI/internal/domain/knowledgeModel"
	"github.com/avitale/VillageGuideAPI/pkg/logger_i"
)

const documentKeyPrefix = "document:"

// RedisDocumentStore keeps the upload/ingest status records. They expire
// after a week - the passages themselves live in the knowledge store.
type RedisDocumentStore struct {
	store  *redisStore.Store
	logger *logger_i.Logger
}

func GetRedisDocumentStore(ctx context.Context) *RedisDocumentStore {
	inner := redisStore.GetRedisStore(ctx, config.RedisDocumentStore)
	if inner == nil {
		return nil
	}
	return &RedisDocumentStore{
		store:  inner,
		logger: logger_i.NewLogger("DocumentStore"),
	}
}

func TestDocumentStore(store *redisStore.Store) *RedisDocumentStore {
	return &RedisDocumentStore{
		store:  store,
		logger: logger_i.NewLogger("test document store"),
	}
}

func (s *RedisDocumentStore) SaveDocument(ctx context.Context, document knowledgeModel.UploadedDocument) error {
	log := s.logger.WithTrace(ctx).With("documentId", document.Id)
	data, err := json.Marshal(document)
	if err != nil {
		return err
	}
	err = s.store.Set(ctx, documentKeyPrefix+document.Id, data, config.RedisDocumentStoreTTL)
	if err == nil {
		log.Debug("saved document record", "status", document.Status)
	}
	return err
}

func (s *RedisDocumentStore) GetDocument(ctx context.Context, id string) (knowledgeModel.UploadedDocument, bool) {
	var document knowledgeModel.UploadedDocument
	val, err := s.store.Get(ctx, documentKeyPrefix+id)
	if s.store.IsNil(err) {
		return document, false
	} else if err != nil {
		s.logger.WithTrace(ctx).Error("error getting document record", "error", err)
		return document, false
	}
	if err := json.Unmarshal([]byte(val), &document); err != nil {
		return document, false
	}
	return document, true
}

type InMemoryDocumentStore struct {
	lock      *sync.RWMutex
	documents map[string]knowledgeModel.UploadedDocument
}

func InitInMemoryDocumentStore() *InMemoryDocumentStore {
	return &InMemoryDocumentStore{
		lock:      new(sync.RWMutex),
		documents: make(map[string]knowledgeModel.UploadedDocument),
	}
}

func (store *InMemoryDocumentStore) SaveDocument(ctx context.Context, document knowledgeModel.UploadedDocument) error {
	store.lock.Lock()
	defer store.lock.Unlock()
	store.documents[document.Id] = document
	return nil
}

func (store *InMemoryDocumentStore) GetDocument(ctx context.Context, id string) (knowledgeModel.UploadedDocument, bool) {
	store.lock.RLock()
	defer store.lock.RUnlock()
	document, found := store.documents[id]
	return document, found
}
