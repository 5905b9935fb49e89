package catalogStore

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"github.com/avitale/VillageGuideAPI/internal/config"
	"github.com/avitale/VillageGuideAPI/internal/data/redisStore"
	"github.com/avitale/VillageGuideAPI/internal/domain/chatModel"
	"github.com/avitale/VillageGuideAPI/internal/domain/knowledgeModel"
	"github.com/avitale/VillageGuideAPI/pkg/logger_i"
	"github.com/google/uuid"
)

const (
	personaKeyPrefix  = "persona:"
	personaIndexKey   = "personas"
	monumentKeyPrefix = "monument:"
)

// RedisCatalogStore holds the small read-mostly sets: personas the visitor
// can pick from and the monuments passages soft-join against by slug.
type RedisCatalogStore struct {
	store  *redisStore.Store
	logger *logger_i.Logger
}

func GetRedisCatalogStore(ctx context.Context) *RedisCatalogStore {
	inner := redisStore.GetRedisStore(ctx, config.RedisCatalogStore)
	if inner == nil {
		return nil
	}
	return &RedisCatalogStore{
		store:  inner,
		logger: logger_i.NewLogger("CatalogStore"),
	}
}

func TestCatalogStore(store *redisStore.Store) *RedisCatalogStore {
	return &RedisCatalogStore{
		store:  store,
		logger: logger_i.NewLogger("test catalog store"),
	}
}

func (s *RedisCatalogStore) SavePersona(ctx context.Context, persona chatModel.Persona) error {
	if persona.Id == "" {
		persona.Id = uuid.New().String()
	}
	data, err := json.Marshal(persona)
	if err != nil {
		return err
	}
	if err := s.store.Set(ctx, personaKeyPrefix+persona.Id, data, 0); err != nil {
		return err
	}
	return s.store.SetAdd(ctx, personaIndexKey, persona.Id)
}

func (s *RedisCatalogStore) GetPersona(ctx context.Context, id string) (chatModel.Persona, bool) {
	var persona chatModel.Persona
	val, err := s.store.Get(ctx, personaKeyPrefix+id)
	if s.store.IsNil(err) {
		return persona, false
	} else if err != nil {
		s.logger.WithTrace(ctx).Error("error getting persona", "error", err)
		return persona, false
	}
	if err := json.Unmarshal([]byte(val), &persona); err != nil {
		return persona, false
	}
	return persona, true
}

func (s *RedisCatalogStore) ListPersonas(ctx context.Context) ([]chatModel.Persona, error) {
	ids, err := s.store.SetMembers(ctx, personaIndexKey)
	if err != nil {
		return nil, err
	}
	var personas []chatModel.Persona
	for _, id := range ids {
		if persona, found := s.GetPersona(ctx, id); found {
			personas = append(personas, persona)
		}
	}
	sort.Slice(personas, func(i, j int) bool { return personas[i].Name < personas[j].Name })
	return personas, nil
}

func (s *RedisCatalogStore) InsertMonument(ctx context.Context, monument knowledgeModel.Monument) (string, error) {
	if monument.Id == "" {
		monument.Id = uuid.New().String()
	}
	if monument.Slug == "" {
		monument.Slug = knowledgeModel.Slugify(monument.NameIt)
	}
	data, err := json.Marshal(monument)
	if err != nil {
		return "", err
	}
	if err := s.store.Set(ctx, monumentKeyPrefix+monument.Slug, data, 0); err != nil {
		return "", err
	}
	return monument.Id, nil
}

func (s *RedisCatalogStore) GetMonumentBySlug(ctx context.Context, slug string) (knowledgeModel.Monument, bool) {
	var monument knowledgeModel.Monument
	val, err := s.store.Get(ctx, monumentKeyPrefix+slug)
	if s.store.IsNil(err) {
		return monument, false
	} else if err != nil {
		s.logger.WithTrace(ctx).Error("error getting monument", "error", err)
		return monument, false
	}
	if err := json.Unmarshal([]byte(val), &monument); err != nil {
		return monument, false
	}
	return monument, true
}

// InMemoryCatalogStore is the Redis-offline fallback, preloaded with the
// default personas so the chat surface still has a catalog to offer.
type InMemoryCatalogStore struct {
	lock      *sync.RWMutex
	personas  map[string]chatModel.Persona
	monuments map[string]knowledgeModel.Monument
}

func InitInMemoryCatalogStore() *InMemoryCatalogStore {
	return &InMemoryCatalogStore{
		lock:      new(sync.RWMutex),
		personas:  make(map[string]chatModel.Persona),
		monuments: make(map[string]knowledgeModel.Monument),
	}
}

func (store *InMemoryCatalogStore) SavePersona(ctx context.Context, persona chatModel.Persona) error {
	store.lock.Lock()
	defer store.lock.Unlock()
	if persona.Id == "" {
		persona.Id = uuid.New().String()
	}
	store.personas[persona.Id] = persona
	return nil
}

func (store *InMemoryCatalogStore) GetPersona(ctx context.Context, id string) (chatModel.Persona, bool) {
	store.lock.RLock()
	defer store.lock.RUnlock()
	persona, found := store.personas[id]
	return persona, found
}

func (store *InMemoryCatalogStore) ListPersonas(ctx context.Context) ([]chatModel.Persona, error) {
	store.lock.RLock()
	defer store.lock.RUnlock()
	var personas []chatModel.Persona
	for _, persona := range store.personas {
		personas = append(personas, persona)
	}
	sort.Slice(personas, func(i, j int) bool { return personas[i].Name < personas[j].Name })
	return personas, nil
}

func (store *InMemoryCatalogStore) InsertMonument(ctx context.Context, monument knowledgeModel.Monument) (string, error) {
	store.lock.Lock()
	defer store.lock.Unlock()
	if monument.Id == "" {
		monument.Id = uuid.New().String()
	}
	if monument.Slug == "" {
		monument.Slug = knowledgeModel.Slugify(monument.NameIt)
	}
	store.monuments[monument.Slug] = monument
	return monument.Id, nil
}

func (store *InMemoryCatalogStore) GetMonumentBySlug(ctx context.Context, slug string) (knowledgeModel.Monument, bool) {
	store.lock.RLock()
	defer store.lock.RUnlock()
	monument, found := store.monuments[slug]
	return monument, found
}
