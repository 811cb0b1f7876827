package peekyv1

import (
	"strings"
	"testing"

	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/types/known/emptypb"
)

func TestCodecIsRegistered(t *testing.T) {
	if encoding.GetCodec(CodecName) == nil {
		t.Fatalf("codec %q not registered", CodecName)
	}
}

func TestCodecKeepsOmittedUpdateFieldsNil(t *testing.T) {
	var req UpdateCategoryRequest
	if err := (Codec{}).Unmarshal([]byte(`{"id": 3, "name": "Editors"}`), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if req.Id != 3 || req.Name == nil || *req.Name != "Editors" {
		t.Fatalf("unexpected request %+v", req)
	}
	if req.SortOrder != nil {
		t.Fatalf("sort_order should stay nil when omitted, got %d", *req.SortOrder)
	}
}

func TestCodecUsesProtoJSONForProtoMessages(t *testing.T) {
	data, err := (Codec{}).Marshal(&emptypb.Empty{})
	if err != nil {
		t.Fatalf("marshal empty: %v", err)
	}
	if strings.TrimSpace(string(data)) != "{}" {
		t.Fatalf("empty encodes as %q, want {}", data)
	}
	if err := (Codec{}).Unmarshal([]byte("{}"), &emptypb.Empty{}); err != nil {
		t.Fatalf("unmarshal empty: %v", err)
	}
}
