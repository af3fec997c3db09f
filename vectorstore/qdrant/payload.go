package qdrant

import (
	"fmt"
	"math"
	"sort"

	pb "github.com/qdrant/go-client/qdrant"

	"github.com/poiesic/indexit/core"
)

// Payload field names. The document identity is carried in the payload
// because the point ID is a derived UUID, not the identity itself.
const (
	payloadID       = "id"
	payloadContent  = "content"
	payloadMetadata = "metadata"
)

// documentPayload encodes a document as a Qdrant point payload.
func documentPayload(doc core.Document) map[string]*pb.Value {
	payload := map[string]*pb.Value{
		payloadID:      {Kind: &pb.Value_StringValue{StringValue: doc.ID}},
		payloadContent: {Kind: &pb.Value_StringValue{StringValue: doc.Content}},
	}
	if len(doc.Metadata) > 0 {
		payload[payloadMetadata] = &pb.Value{
			Kind: &pb.Value_StructValue{StructValue: toStruct(doc.Metadata)},
		}
	}
	return payload
}

// documentFromPayload decodes a point payload back into a document.
func documentFromPayload(payload map[string]*pb.Value) core.Document {
	doc := core.Document{
		ID:      payload[payloadID].GetStringValue(),
		Content: payload[payloadContent].GetStringValue(),
	}
	if metadata := payload[payloadMetadata].GetStructValue(); metadata != nil {
		doc.Metadata = fromStruct(metadata)
	}
	return doc
}

func toStruct(m map[string]any) *pb.Struct {
	fields := make(map[string]*pb.Value, len(m))
	for key, value := range m {
		fields[key] = toValue(value)
	}
	return &pb.Struct{Fields: fields}
}

func fromStruct(s *pb.Struct) map[string]any {
	m := make(map[string]any, len(s.GetFields()))
	for key, value := range s.GetFields() {
		m[key] = fromValue(value)
	}
	return m
}

// toValue converts a metadata value to the Qdrant payload representation.
// Integral floats become integers, matching how Qdrant types JSON numbers
// and keeping stored payloads comparable with filter match conditions.
func toValue(value any) *pb.Value {
	switch v := value.(type) {
	case nil:
		return &pb.Value{Kind: &pb.Value_NullValue{NullValue: pb.NullValue_NULL_VALUE}}
	case string:
		return &pb.Value{Kind: &pb.Value_StringValue{StringValue: v}}
	case bool:
		return &pb.Value{Kind: &pb.Value_BoolValue{BoolValue: v}}
	case int:
		return &pb.Value{Kind: &pb.Value_IntegerValue{IntegerValue: int64(v)}}
	case int64:
		return &pb.Value{Kind: &pb.Value_IntegerValue{IntegerValue: v}}
	case float32:
		return toValue(float64(v))
	case float64:
		if v == math.Trunc(v) {
			return &pb.Value{Kind: &pb.Value_IntegerValue{IntegerValue: int64(v)}}
		}
		return &pb.Value{Kind: &pb.Value_DoubleValue{DoubleValue: v}}
	case map[string]any:
		return &pb.Value{Kind: &pb.Value_StructValue{StructValue: toStruct(v)}}
	case []any:
		values := make([]*pb.Value, len(v))
		for i, item := range v {
			values[i] = toValue(item)
		}
		return &pb.Value{Kind: &pb.Value_ListValue{ListValue: &pb.ListValue{Values: values}}}
	default:
		return &pb.Value{Kind: &pb.Value_StringValue{StringValue: fmt.Sprint(v)}}
	}
}

func fromValue(value *pb.Value) any {
	switch kind := value.GetKind().(type) {
	case *pb.Value_NullValue:
		return nil
	case *pb.Value_StringValue:
		return kind.StringValue
	case *pb.Value_BoolValue:
		return kind.BoolValue
	case *pb.Value_IntegerValue:
		return kind.IntegerValue
	case *pb.Value_DoubleValue:
		return kind.DoubleValue
	case *pb.Value_StructValue:
		return fromStruct(kind.StructValue)
	case *pb.Value_ListValue:
		values := make([]any, len(kind.ListValue.GetValues()))
		for i, item := range kind.ListValue.GetValues() {
			values[i] = fromValue(item)
		}
		return values
	default:
		return nil
	}
}

// buildFilter turns the configured metadata predicate into must-match
// conditions over the nested metadata payload. Keys are sorted so the
// request shape is deterministic. Returns nil for an empty predicate.
func buildFilter(filter map[string]any) *pb.Filter {
	if len(filter) == 0 {
		return nil
	}

	keys := make([]string, 0, len(filter))
	for key := range filter {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	must := make([]*pb.Condition, 0, len(keys))
	for _, key := range keys {
		must = append(must, fieldCondition(payloadMetadata+"."+key, filter[key]))
	}
	return &pb.Filter{Must: must}
}

// fieldCondition builds the exact-match condition for one scalar value.
// Qdrant match conditions cover keywords, integers, and booleans;
// non-integral numbers fall back to a degenerate range [v, v].
func fieldCondition(key string, value any) *pb.Condition {
	field := &pb.FieldCondition{Key: key}
	switch v := value.(type) {
	case string:
		field.Match = &pb.Match{MatchValue: &pb.Match_Keyword{Keyword: v}}
	case bool:
		field.Match = &pb.Match{MatchValue: &pb.Match_Boolean{Boolean: v}}
	case int:
		field.Match = &pb.Match{MatchValue: &pb.Match_Integer{Integer: int64(v)}}
	case int64:
		field.Match = &pb.Match{MatchValue: &pb.Match_Integer{Integer: v}}
	case float64:
		if v == math.Trunc(v) {
			field.Match = &pb.Match{MatchValue: &pb.Match_Integer{Integer: int64(v)}}
		} else {
			field.Range = &pb.Range{Gte: &v, Lte: &v}
		}
	default:
		field.Match = &pb.Match{MatchValue: &pb.Match_Keyword{Keyword: fmt.Sprint(v)}}
	}
	return &pb.Condition{ConditionOneOf: &pb.Condition_Field{Field: field}}
}
