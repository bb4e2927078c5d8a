package server

import (
	"context"
	"net/http"
	"strconv"

	"github.com/huynhanx03/go-bptree/pkg/common/apperr"
	"github.com/huynhanx03/go-bptree/pkg/common/http/response"
	"github.com/huynhanx03/go-bptree/pkg/datastructs/btree"
	"github.com/huynhanx03/go-bptree/pkg/datastructs/btree/report"
)

func recordScope(key int64) string {
	return "record " + strconv.FormatInt(key, 10)
}

func notFound(key int64) error {
	return apperr.NewError(recordScope(key), response.CodeNotFound, apperr.MsgNotFound, http.StatusNotFound, nil)
}

func (s *Server) insert(_ context.Context, req *InsertRequest) (OutcomeResponse, error) {
	key := *req.Key
	out := s.index.Insert(key, req.Value)
	if out == btree.AlreadyPresent {
		return OutcomeResponse{}, apperr.NewError(recordScope(key), response.CodeConflict, apperr.MsgConflict, http.StatusConflict, nil)
	}
	return OutcomeResponse{Key: key, Outcome: out.String()}, nil
}

func (s *Server) get(_ context.Context, req *KeyRequest) (Record, error) {
	v, ok := s.index.Search(req.Key)
	if !ok {
		return Record{}, notFound(req.Key)
	}
	return Record{Key: req.Key, Value: v}, nil
}

func (s *Server) update(_ context.Context, req *UpdateRequest) (OutcomeResponse, error) {
	out := s.index.Update(req.Key, *req.Value)
	if out == btree.NotFound {
		return OutcomeResponse{}, notFound(req.Key)
	}
	return OutcomeResponse{Key: req.Key, Outcome: out.String()}, nil
}

func (s *Server) delete(_ context.Context, req *KeyRequest) (OutcomeResponse, error) {
	out := s.index.Delete(req.Key)
	if out == btree.NotFound {
		return OutcomeResponse{}, notFound(req.Key)
	}
	return OutcomeResponse{Key: req.Key, Outcome: out.String()}, nil
}

func (s *Server) list(_ context.Context, _ *ListRequest) ([]Record, error) {
	entries := s.index.Entries()
	out := make([]Record, len(entries))
	for i, e := range entries {
		out[i] = Record{Key: e.Key, Value: e.Value}
	}
	return out, nil
}

func (s *Server) stats(_ context.Context, _ *ListRequest) (report.Snapshot, error) {
	var snap report.Snapshot
	s.index.View(func(t *btree.Tree[int64, string]) {
		snap = report.Take[int64](t)
	})
	return snap, nil
}
