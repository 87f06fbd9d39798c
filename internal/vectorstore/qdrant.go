package vectorstore

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/qdrant/go-client/qdrant"

	"lecturebot/internal/contextutil"
)

const (
	scrollBatchSize = 256
	// Upper bound on points fetched by ScrollTexts. Quiz generation drives one
	// model call per chunk, so an unbounded scroll would be unbounded compute.
	scrollMaxPoints = 4096
)

// QdrantStore implements VectorStore using Qdrant.
type QdrantStore struct {
	client *qdrant.Client
}

// NewQdrantStore creates a new Qdrant vector store client.
// urlStr should be in the format "http://host:port" (e.g., "http://localhost:6333").
// The gRPC port (typically 6334) is derived from the HTTP port.
func NewQdrantStore(urlStr string) (*QdrantStore, error) {
	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid Qdrant URL: %w", err)
	}

	host := parsedURL.Hostname()
	if host == "" {
		host = "localhost"
	}

	port := 6334 // default gRPC port
	if parsedURL.Port() != "" {
		httpPort, err := strconv.Atoi(parsedURL.Port())
		if err == nil {
			// gRPC port is typically HTTP port + 1
			port = httpPort + 1
		}
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host: host,
		Port: port,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Qdrant client: %w", err)
	}

	return &QdrantStore{client: client}, nil
}

// EnsureCollection creates the collection if absent and validates the vector
// size if it already exists.
func (s *QdrantStore) EnsureCollection(ctx context.Context, collection string, vectorSize int) error {
	logger := contextutil.LoggerFromContext(ctx)

	exists, err := s.client.CollectionExists(ctx, collection)
	if err != nil {
		return fmt.Errorf("failed to check collection existence: %w", err)
	}

	if !exists {
		err := s.client.CreateCollection(ctx, &qdrant.CreateCollection{
			CollectionName: collection,
			VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
				Size:     uint64(vectorSize),
				Distance: qdrant.Distance_Cosine,
			}),
		})
		if err != nil {
			return fmt.Errorf("failed to create collection: %w", err)
		}
		logger.InfoContext(ctx, "collection created", "collection", collection, "vector_size", vectorSize)
		return nil
	}

	info, err := s.client.GetCollectionInfo(ctx, collection)
	if err != nil {
		return fmt.Errorf("failed to get collection info: %w", err)
	}

	config := info.Config
	if config == nil || config.Params == nil {
		return fmt.Errorf("collection config is invalid")
	}
	vectorsConfig := config.Params.GetVectorsConfig()
	if vectorsConfig == nil {
		return fmt.Errorf("collection vectors config is invalid")
	}
	params := vectorsConfig.GetParams()
	if params == nil {
		return fmt.Errorf("collection vector params are invalid")
	}

	if int(params.Size) != vectorSize {
		return fmt.Errorf("collection vector size mismatch: expected %d, got %d", vectorSize, params.Size)
	}

	return nil
}

// DeleteCollection removes a collection and all its points.
func (s *QdrantStore) DeleteCollection(ctx context.Context, collection string) error {
	logger := contextutil.LoggerFromContext(ctx)

	exists, err := s.client.CollectionExists(ctx, collection)
	if err != nil {
		return fmt.Errorf("failed to check collection existence: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: %s", ErrCollectionNotFound, collection)
	}

	if err := s.client.DeleteCollection(ctx, collection); err != nil {
		return fmt.Errorf("failed to delete collection: %w", err)
	}

	logger.InfoContext(ctx, "collection deleted", "collection", collection)
	return nil
}

// ListCollections returns the names of all collections.
func (s *QdrantStore) ListCollections(ctx context.Context) ([]string, error) {
	names, err := s.client.ListCollections(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	return names, nil
}

// Upsert inserts or updates points in the collection. The chunk text is stored
// in the point payload next to its source metadata.
func (s *QdrantStore) Upsert(ctx context.Context, collection string, points []Point) error {
	logger := contextutil.LoggerFromContext(ctx)

	if len(points) == 0 {
		return nil
	}

	qdrantPoints := make([]*qdrant.PointStruct, 0, len(points))
	for _, point := range points {
		payload := make(map[string]any, len(point.Meta)+1)
		for k, v := range point.Meta {
			payload[k] = v
		}
		payload["text"] = point.Text

		qdrantPoints = append(qdrantPoints, &qdrant.PointStruct{
			Id:      qdrant.NewID(point.ID),
			Vectors: qdrant.NewVectors(point.Vec...),
			Payload: qdrant.NewValueMap(payload),
		})
	}

	_, err := s.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: collection,
		Points:         qdrantPoints,
	})
	if err != nil {
		logger.ErrorContext(ctx, "failed to upsert points", "collection", collection, "count", len(points), "error", err)
		return fmt.Errorf("failed to upsert points: %w", err)
	}

	logger.InfoContext(ctx, "upserted points", "collection", collection, "count", len(points))
	return nil
}

// Search performs a similarity search returning the top-k ranked results.
func (s *QdrantStore) Search(ctx context.Context, collection string, query []float32, k int) ([]SearchResult, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if k <= 0 {
		return nil, fmt.Errorf("k must be greater than 0")
	}

	limit := uint64(k)
	scoredPoints, err := s.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: collection,
		Query:          qdrant.NewQuery(query...),
		Limit:          &limit,
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		logger.ErrorContext(ctx, "failed to search points", "collection", collection, "k", k, "error", err)
		return nil, fmt.Errorf("failed to search points: %w", err)
	}

	results := make([]SearchResult, 0, len(scoredPoints))
	for _, point := range scoredPoints {
		pointID := ""
		if point.Id != nil {
			pointID = point.Id.GetUuid()
		}

		meta := convertPayloadToMap(point.Payload)
		text, _ := meta["text"].(string)
		delete(meta, "text")

		results = append(results, SearchResult{
			PointID: pointID,
			Score:   point.Score,
			Text:    text,
			Meta:    meta,
		})
	}

	logger.InfoContext(ctx, "search completed", "collection", collection, "k", k, "results", len(results))
	return results, nil
}

// ScrollTexts returns the texts of all points in the collection, paging
// through the store in fixed-size batches up to scrollMaxPoints.
func (s *QdrantStore) ScrollTexts(ctx context.Context, collection string) ([]string, error) {
	logger := contextutil.LoggerFromContext(ctx)

	var texts []string
	var offset *qdrant.PointId

	for len(texts) < scrollMaxPoints {
		limit := uint32(scrollBatchSize)
		points, err := s.client.Scroll(ctx, &qdrant.ScrollPoints{
			CollectionName: collection,
			Limit:          &limit,
			WithPayload:    qdrant.NewWithPayload(true),
			Offset:         offset,
		})
		if err != nil {
			logger.ErrorContext(ctx, "failed to scroll points", "collection", collection, "error", err)
			return nil, fmt.Errorf("failed to scroll points: %w", err)
		}

		start := 0
		if offset != nil && len(points) > 0 {
			// The offset point is included again on subsequent pages.
			start = 1
		}
		for _, point := range points[start:] {
			meta := convertPayloadToMap(point.Payload)
			if text, ok := meta["text"].(string); ok {
				texts = append(texts, text)
			}
		}

		if len(points) < scrollBatchSize {
			break
		}
		offset = points[len(points)-1].Id
	}

	logger.InfoContext(ctx, "scrolled collection", "collection", collection, "count", len(texts))
	return texts, nil
}

// convertPayloadToMap converts a Qdrant payload to map[string]any.
func convertPayloadToMap(payload map[string]*qdrant.Value) map[string]any {
	result := make(map[string]any, len(payload))
	for k, v := range payload {
		if v == nil {
			continue
		}
		result[k] = convertValue(v)
	}
	return result
}

// convertValue converts a Qdrant Value to a Go any type.
func convertValue(v *qdrant.Value) any {
	switch val := v.Kind.(type) {
	case *qdrant.Value_BoolValue:
		return val.BoolValue
	case *qdrant.Value_IntegerValue:
		return val.IntegerValue
	case *qdrant.Value_DoubleValue:
		return val.DoubleValue
	case *qdrant.Value_StringValue:
		return val.StringValue
	case *qdrant.Value_ListValue:
		list := make([]any, len(val.ListValue.Values))
		for i, item := range val.ListValue.Values {
			list[i] = convertValue(item)
		}
		return list
	case *qdrant.Value_StructValue:
		return convertPayloadToMap(val.StructValue.Fields)
	default:
		return nil
	}
}
