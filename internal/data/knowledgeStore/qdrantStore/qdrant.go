package qdrantStore

import (
	"context"
	"errors"
	"os"
	"strconv"
	"sync"

	"github.com/avitale/VillageGuideAPI/internal/config"
	"github.com/avitale/VillageGuideAPI/internal/domain/knowledgeModel"
	"github.com/avitale/VillageGuideAPI/pkg/logger_i"
	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"
)

var logger *logger_i.Logger
var qdrantInstance *qdrant.Client
var once sync.Once
var dimension = uint64(config.EmbeddingOutputDimensionality)
var collectionName = config.KnowledgeCollection

type Store struct {
	client *qdrant.Client
}

func GetQdrantKnowledgeStore(ctx context.Context) *Store {

	once.Do(func() {
		logger = logger_i.NewLogger("Qdrant")
		res := newClient()
		if res != nil {
			qdrantInstance = res
			go closeQdrant(ctx, qdrantInstance)
		}
	})

	if qdrantInstance == nil {
		return nil
	}
	return &Store{client: qdrantInstance}
}

func newClient() *qdrant.Client {

	host := os.Getenv("QDRANT_HOST")
	port, er := strconv.Atoi(os.Getenv("QDRANT_PORT"))

	if host == "" || er != nil {
		host = config.QdrantHost
		port = config.QdrantGrpcPort
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:     host,
		Port:     port,
		UseTLS:   config.QdrantUseTLS,
		PoolSize: uint(config.QdrantPoolSize),
	})
	if err != nil {
		logger.Error("could not instantiate: ", "error:", err)
		return nil
	}

	if err = bootstrapCollection(context.Background(), client); err != nil {
		logger.Error("could not create collection: ", "collectionName", collectionName, "error:", err)
		return nil
	}

	return client
}

func closeQdrant(ctx context.Context, qi *qdrant.Client) {
	<-ctx.Done()
	logger.Info("Shutting down Qdrant")
	err := qi.Close()
	if err != nil {
		logger.Error("could not close Qdrant: ", "error:", err)
	}
	logger.Info("Closed Qdrant")
}

func bootstrapCollection(ctx context.Context, client *qdrant.Client) error {
	if collectionName == "" {
		return errors.New("empty collection name")
	}

	exists, err := client.CollectionExists(ctx, collectionName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	err = client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: collectionName,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     dimension,
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil {
		return err
	}

	// equality filters used by every search path
	for _, field := range []string{"language", "category", "content_type", "monument_id", "embedding_model"} {
		_, err = client.CreateFieldIndex(ctx, &qdrant.CreateFieldIndexCollection{
			CollectionName: collectionName,
			FieldName:      field,
			FieldType:      qdrant.FieldType_FieldTypeKeyword.Enum(),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (db *Store) InsertPassage(ctx context.Context, passage knowledgeModel.Passage) (string, error) {
	loggr := logger.WithTrace(ctx)

	if passage.Id == "" {
		passage.Id = uuid.New().String()
	}
	passage.CountWords()

	// qdrant points always carry a vector - passages seeded before any
	// embedding job ran get a zero vector and has_embedding=false, and the
	// semantic path filters them out
	vector := passage.Embedding
	hasEmbedding := len(vector) > 0
	if !hasEmbedding {
		vector = make([]float32, dimension)
	}

	tags := make([]any, len(passage.Tags))
	for i, tag := range passage.Tags {
		tags[i] = tag
	}

	_, err := db.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: collectionName,
		Wait:           qdrant.PtrOf(true),
		Points: []*qdrant.PointStruct{
			{
				Id:      qdrant.NewID(passage.Id),
				Vectors: qdrant.NewVectors(vector...),
				Payload: qdrant.NewValueMap(map[string]any{
					"title":           passage.Title,
					"content":         passage.Content,
					"content_type":    string(passage.ContentType),
					"category":        passage.Category,
					"location":        passage.Location,
					"tags":            tags,
					"language":        passage.Language,
					"monument_id":     passage.MonumentId,
					"word_count":      passage.WordCount,
					"source_document": passage.SourceDocument,
					"source_page":     passage.SourcePage,
					"chunk_index":     passage.ChunkIndex,
					"has_embedding":   hasEmbedding,
					"embedding_model": passage.EmbeddingModel,
				}),
			},
		},
	})
	if err != nil {
		loggr.Error("Error upserting passage: ", "error:", err)
		return "", err
	}
	return passage.Id, nil
}

func (db *Store) SemanticSearch(ctx context.Context, embedding []float32, threshold float32, limit int, filters knowledgeModel.SearchFilters) ([]knowledgeModel.ScoredPassage, error) {
	loggr := logger.WithTrace(ctx)

	filter := buildFilter(filters)
	filter.Must = append(filter.Must, qdrant.NewMatchBool("has_embedding", true))

	result, err := db.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: collectionName,
		Query:          qdrant.NewQuery(embedding...),
		Limit:          qdrant.PtrOf(uint64(limit)),
		ScoreThreshold: qdrant.PtrOf(threshold),
		WithPayload:    qdrant.NewWithPayload(true),
		Filter:         filter,
	})
	if err != nil {
		loggr.Error("Error querying Qdrant: ", "error:", err)
		return nil, err
	}

	matches := make([]knowledgeModel.ScoredPassage, 0, len(result))
	for _, hit := range result {
		matches = append(matches, knowledgeModel.ScoredPassage{
			Passage: passageFromPayload(hit.Id, hit.Payload),
			Score:   hit.Score,
		})
	}
	loggr.Debug("semantic search", "matches", len(matches))
	return matches, nil
}

// KeywordSearch scrolls the filtered corpus and substring-matches client
// side. The corpus is tens to low hundreds of passages, scanning it is fine.
func (db *Store) KeywordSearch(ctx context.Context, query string, limit int, filters knowledgeModel.SearchFilters) ([]knowledgeModel.Passage, error) {
	loggr := logger.WithTrace(ctx)

	points, err := db.client.Scroll(ctx, &qdrant.ScrollPoints{
		CollectionName: collectionName,
		Filter:         buildFilter(filters),
		Limit:          qdrant.PtrOf(uint32(1000)),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		loggr.Error("Error scrolling Qdrant: ", "error:", err)
		return nil, err
	}

	var matches []knowledgeModel.Passage
	for _, point := range points {
		passage := passageFromPayload(point.Id, point.Payload)
		if knowledgeModel.MatchesKeyword(passage, query) {
			matches = append(matches, passage)
			if len(matches) >= limit {
				break
			}
		}
	}
	return matches, nil
}

func (db *Store) HasEmbeddings(ctx context.Context, language string, model string) (bool, error) {
	filter := &qdrant.Filter{
		Must: []*qdrant.Condition{
			qdrant.NewMatchBool("has_embedding", true),
			qdrant.NewMatch("language", language),
			qdrant.NewMatch("embedding_model", model),
		},
	}
	count, err := db.client.Count(ctx, &qdrant.CountPoints{
		CollectionName: collectionName,
		Filter:         filter,
	})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func buildFilter(filters knowledgeModel.SearchFilters) *qdrant.Filter {
	filter := &qdrant.Filter{}
	if filters.Language != "" {
		filter.Must = append(filter.Must, qdrant.NewMatch("language", filters.Language))
	}
	if filters.Category != "" {
		filter.Must = append(filter.Must, qdrant.NewMatch("category", filters.Category))
	}
	if filters.ContentType != "" {
		filter.Must = append(filter.Must, qdrant.NewMatch("content_type", filters.ContentType))
	}
	if filters.MonumentId != "" {
		filter.Must = append(filter.Must, qdrant.NewMatch("monument_id", filters.MonumentId))
	}
	if filters.EmbeddingModel != "" {
		filter.Must = append(filter.Must, qdrant.NewMatch("embedding_model", filters.EmbeddingModel))
	}
	return filter
}

func passageFromPayload(id *qdrant.PointId, payload map[string]*qdrant.Value) knowledgeModel.Passage {
	passage := knowledgeModel.Passage{
		Id:             id.GetUuid(),
		Title:          payload["title"].GetStringValue(),
		Content:        payload["content"].GetStringValue(),
		ContentType:    knowledgeModel.ContentType(payload["content_type"].GetStringValue()),
		Category:       payload["category"].GetStringValue(),
		Location:       payload["location"].GetStringValue(),
		Language:       payload["language"].GetStringValue(),
		MonumentId:     payload["monument_id"].GetStringValue(),
		WordCount:      int(payload["word_count"].GetIntegerValue()),
		SourceDocument: payload["source_document"].GetStringValue(),
		SourcePage:     int(payload["source_page"].GetIntegerValue()),
		ChunkIndex:     int(payload["chunk_index"].GetIntegerValue()),
		EmbeddingModel: payload["embedding_model"].GetStringValue(),
	}
	if list := payload["tags"].GetListValue(); list != nil {
		for _, value := range list.Values {
			passage.Tags = append(passage.Tags, value.GetStringValue())
		}
	}
	return passage
}
