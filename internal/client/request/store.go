package request

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/iudanet/offlinesync/internal/client/capture"
	"github.com/iudanet/offlinesync/internal/client/storage"
	"github.com/iudanet/offlinesync/internal/client/storage/sqlite"
)

// Store записывает запрос и его дочерние строки внутри tx.
// Повторный вызов в той же транзакции оставляет те же строки.
func (r *Request) Store(ctx context.Context, tx *sqlite.Tx, mapper *capture.IDMapper) error {
	if !r.Persisted() {
		return fmt.Errorf("request has no id")
	}

	payload, err := r.encodePayload()
	if err != nil {
		return err
	}

	if err := tx.SaveRequest(ctx, &r.Envelope, payload); err != nil {
		return err
	}

	switch r.Variant.Payload {
	case PayloadRecords:
		return capture.StoreRecords(ctx, tx, r.ID, r.Records, mapper)

	case PayloadDocument:
		if r.Document == nil {
			return fmt.Errorf("request %d: document upload without document", r.ID)
		}
		if mapper != nil {
			r.Document.RecordID = mapper.Resolve(r.Document.InfoArea, r.Document.RecordID)
		}
		return tx.SaveDocument(ctx, r.ID, r.Document)

	case PayloadChildren:
		for _, child := range r.Children {
			root := r.ID
			child.FollowUpRoot = &root
			if err := child.Store(ctx, tx, mapper); err != nil {
				return fmt.Errorf("child request %d: %w", child.ID, err)
			}
		}
	}

	return nil
}

// Load восстанавливает запрос nr из очереди вместе с полезной нагрузкой.
// Returns storage.ErrRequestNotFound if the request doesn't exist
func Load(ctx context.Context, tx *sqlite.Tx, nr int64) (*Request, error) {
	env, payload, err := tx.LoadRequest(ctx, nr)
	if err != nil {
		return nil, err
	}

	r := &Request{
		Variant:  VariantFor(env.Kind),
		Envelope: *env,
	}

	if err := r.decodePayload(payload); err != nil {
		return nil, fmt.Errorf("request %d: %w", nr, err)
	}

	switch r.Variant.Payload {
	case PayloadRecords:
		r.Records, err = capture.LoadRecords(ctx, tx, nr, r.Variant.MergeOnLoad)
		if err != nil {
			return nil, err
		}

	case PayloadDocument:
		r.Document, err = tx.LoadDocument(ctx, nr)
		if err != nil && !errors.Is(err, storage.ErrDocumentNotFound) {
			return nil, err
		}

	case PayloadChildren:
		childNrs, err := tx.ChildRequestNumbers(ctx, nr)
		if err != nil {
			return nil, err
		}
		for _, childNr := range childNrs {
			child, err := Load(ctx, tx, childNr)
			if err != nil {
				return nil, fmt.Errorf("child request %d: %w", childNr, err)
			}
			r.Children = append(r.Children, child)
		}
	}

	return r, nil
}

// Delete удаляет запрос и его дочерние запросы внутри tx
func (r *Request) Delete(ctx context.Context, tx *sqlite.Tx) error {
	for _, child := range r.Children {
		if err := child.Delete(ctx, tx); err != nil {
			return err
		}
	}
	return tx.DeleteRequest(ctx, r.ID)
}

func (r *Request) encodePayload() (string, error) {
	if len(r.Parameters) == 0 {
		return "", nil
	}
	data, err := json.Marshal(r.Parameters)
	if err != nil {
		return "", fmt.Errorf("failed to marshal parameters: %w", err)
	}
	return string(data), nil
}

func (r *Request) decodePayload(payload string) error {
	if payload == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(payload), &r.Parameters); err != nil {
		return fmt.Errorf("failed to unmarshal parameters: %w", err)
	}
	return nil
}
