package domain

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// GenesisHash is the previous hash of the first entry of every tenant chain.
const GenesisHash = "GENESIS"

// AuditAction is the kind of mutation an audit entry records.
type AuditAction string

const (
	AuditCreate AuditAction = "CREATE"
	AuditUpdate AuditAction = "UPDATE"
	AuditDelete AuditAction = "DELETE"
	AuditPost   AuditAction = "POST"
	AuditLock   AuditAction = "LOCK"
	AuditClose  AuditAction = "CLOSE"
	AuditReopen AuditAction = "REOPEN"
)

// Subject model names used by the core.
const (
	AuditModelJournalEntry      = "JournalEntry"
	AuditModelSourceTransaction = "SourceTransaction"
	AuditModelFiscalPeriod      = "FiscalPeriod"
	AuditModelFiscalCalendar    = "FiscalCalendar"
)

// AuditRecord describes one mutation to be appended to the tenant's chain.
// Before and After are marshalled to JSON.
type AuditRecord struct {
	TenantID string
	UserID   string
	EntityID *string
	Model    string
	RecordID string
	Action   AuditAction
	Before   any
	After    any
}

// AuditLogEntry is one persisted link of the tenant audit chain. Entries
// written before hashing was introduced have an empty IntegrityHash and a
// zero SequenceNumber.
type AuditLogEntry struct {
	AuditLogID     string          `json:"auditLogID"`
	TenantID       string          `json:"tenantID"`
	EntityID       *string         `json:"entityID,omitempty"`
	UserID         string          `json:"userID"`
	Model          string          `json:"model"`
	RecordID       string          `json:"recordID"`
	Action         AuditAction     `json:"action"`
	Before         json.RawMessage `json:"before,omitempty"`
	After          json.RawMessage `json:"after,omitempty"`
	IntegrityHash  string          `json:"integrityHash,omitempty"`
	PreviousHash   string          `json:"previousHash,omitempty"`
	SequenceNumber int64           `json:"sequenceNumber,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// IsLegacy reports whether the entry predates hash support.
func (e AuditLogEntry) IsLegacy() bool {
	return e.IntegrityHash == ""
}

// ChainPointer is the link a new entry must carry to follow the chain head.
type ChainPointer struct {
	PreviousHash   string
	SequenceNumber int64
}

// NextPointer returns the pointer for the entry that follows head. A nil head
// starts a new chain.
func NextPointer(head *AuditLogEntry) ChainPointer {
	if head == nil {
		return ChainPointer{PreviousHash: GenesisHash, SequenceNumber: 1}
	}
	prev := head.IntegrityHash
	if prev == "" {
		prev = GenesisHash
	}
	return ChainPointer{PreviousHash: prev, SequenceNumber: head.SequenceNumber + 1}
}

// NewAuditLogEntry builds a chained entry for rec at pointer and seals it with
// its integrity hash.
func NewAuditLogEntry(id string, rec AuditRecord, ptr ChainPointer, at time.Time) (AuditLogEntry, error) {
	before, err := snapshotJSON(rec.Before)
	if err != nil {
		return AuditLogEntry{}, fmt.Errorf("marshal before snapshot: %w", err)
	}
	after, err := snapshotJSON(rec.After)
	if err != nil {
		return AuditLogEntry{}, fmt.Errorf("marshal after snapshot: %w", err)
	}

	entry := AuditLogEntry{
		AuditLogID:     id,
		TenantID:       rec.TenantID,
		EntityID:       rec.EntityID,
		UserID:         rec.UserID,
		Model:          rec.Model,
		RecordID:       rec.RecordID,
		Action:         rec.Action,
		Before:         before,
		After:          after,
		PreviousHash:   ptr.PreviousHash,
		SequenceNumber: ptr.SequenceNumber,
		CreatedAt:      at,
	}
	hash, err := entry.ComputeIntegrityHash()
	if err != nil {
		return AuditLogEntry{}, err
	}
	entry.IntegrityHash = hash
	return entry, nil
}

// hashPayload fixes the field order of the canonical serialization.
type hashPayload struct {
	TenantID       string          `json:"tenantId"`
	UserID         string          `json:"userId"`
	EntityID       *string         `json:"entityId"`
	Model          string          `json:"model"`
	RecordID       string          `json:"recordId"`
	Action         AuditAction     `json:"action"`
	Before         json.RawMessage `json:"before"`
	After          json.RawMessage `json:"after"`
	PreviousHash   string          `json:"previousHash"`
	SequenceNumber int64           `json:"sequenceNumber"`
}

// ComputeIntegrityHash returns the hex SHA-256 digest of the entry's canonical
// serialization. The stored IntegrityHash is not part of the input.
func (e AuditLogEntry) ComputeIntegrityHash() (string, error) {
	before, err := CanonicalJSON(e.Before)
	if err != nil {
		return "", fmt.Errorf("canonicalize before snapshot: %w", err)
	}
	after, err := CanonicalJSON(e.After)
	if err != nil {
		return "", fmt.Errorf("canonicalize after snapshot: %w", err)
	}

	payload, err := json.Marshal(hashPayload{
		TenantID:       e.TenantID,
		UserID:         e.UserID,
		EntityID:       e.EntityID,
		Model:          e.Model,
		RecordID:       e.RecordID,
		Action:         e.Action,
		Before:         before,
		After:          after,
		PreviousHash:   e.PreviousHash,
		SequenceNumber: e.SequenceNumber,
	})
	if err != nil {
		return "", fmt.Errorf("marshal hash payload: %w", err)
	}
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:]), nil
}

// CanonicalJSON rewrites raw so that semantically equal documents serialize
// identically: object keys sorted, insignificant whitespace removed and
// numbers in shortest decimal form. Postgres jsonb storage does not preserve
// the original text, so hashing must not depend on it.
func CanonicalJSON(raw json.RawMessage) (json.RawMessage, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return json.RawMessage("null"), nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	normalized, err := normalizeNumbers(v)
	if err != nil {
		return nil, err
	}
	return json.Marshal(normalized)
}

func normalizeNumbers(v any) (any, error) {
	switch t := v.(type) {
	case map[string]any:
		for k, child := range t {
			n, err := normalizeNumbers(child)
			if err != nil {
				return nil, err
			}
			t[k] = n
		}
		return t, nil
	case []any:
		for i, child := range t {
			n, err := normalizeNumbers(child)
			if err != nil {
				return nil, err
			}
			t[i] = n
		}
		return t, nil
	case json.Number:
		d, err := decimal.NewFromString(t.String())
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", t.String(), err)
		}
		return json.Number(d.String()), nil
	default:
		return v, nil
	}
}

func snapshotJSON(v any) (json.RawMessage, error) {
	if v == nil {
		return nil, nil
	}
	if raw, ok := v.(json.RawMessage); ok {
		return CanonicalJSON(raw)
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return CanonicalJSON(b)
}

// Verification failure reasons.
const (
	ReasonSequenceGap       = "sequence gap"
	ReasonChainBroken       = "chain broken"
	ReasonIntegrityMismatch = "integrity mismatch"
)

// VerificationReport summarizes a walk over one tenant's chain.
type VerificationReport struct {
	TenantID            string  `json:"tenantID"`
	Valid               bool    `json:"valid"`
	TotalEntries        int     `json:"totalEntries"`
	CheckedEntries      int     `json:"checkedEntries"`
	FirstInvalidEntryID *string `json:"firstInvalidEntryID,omitempty"`
	Reason              string  `json:"reason,omitempty"`
}

// VerifyChain walks entries in sequence order and reports the first entry that
// does not follow its predecessor. Legacy entries are counted but not checked;
// the expected pointer is reset to follow them. CheckedEntries counts entries
// whose links and hash were inspected, including the failing one.
func VerifyChain(tenantID string, entries []AuditLogEntry) (VerificationReport, error) {
	report := VerificationReport{TenantID: tenantID, Valid: true, TotalEntries: len(entries)}
	expected := NextPointer(nil)

	for i := range entries {
		entry := entries[i]
		if entry.IsLegacy() {
			expected = NextPointer(&entry)
			continue
		}
		report.CheckedEntries++

		reason := ""
		switch {
		case entry.SequenceNumber != expected.SequenceNumber:
			reason = ReasonSequenceGap
		case entry.PreviousHash != expected.PreviousHash:
			reason = ReasonChainBroken
		default:
			hash, err := entry.ComputeIntegrityHash()
			if err != nil {
				return VerificationReport{}, fmt.Errorf("recompute hash of audit entry %s: %w", entry.AuditLogID, err)
			}
			if hash != entry.IntegrityHash {
				reason = ReasonIntegrityMismatch
			}
		}
		if reason != "" {
			id := entry.AuditLogID
			report.Valid = false
			report.FirstInvalidEntryID = &id
			report.Reason = reason
			return report, nil
		}
		expected = NextPointer(&entry)
	}
	return report, nil
}
