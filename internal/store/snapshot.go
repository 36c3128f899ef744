package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/focusloop/ent"
	"github.com/abhisek/focusloop/ent/performancesnapshot"
)

// snapshotRepo implements SnapshotRepo using the ent client.
type snapshotRepo struct {
	client *ent.Client
}

func (r *snapshotRepo) Save(ctx context.Context, snap *PerformanceSnapshot) error {
	dataMap, err := jsonToMap(snap.Data)
	if err != nil {
		return fmt.Errorf("marshal snapshot data: %w", err)
	}

	builder := r.client.PerformanceSnapshot.Create().
		SetStudentID(snap.StudentID).
		SetSequence(snap.Sequence).
		SetData(dataMap)
	if !snap.Timestamp.IsZero() {
		builder = builder.SetTimestamp(snap.Timestamp)
	}
	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (r *snapshotRepo) Latest(ctx context.Context, studentID string) (*PerformanceSnapshot, error) {
	s, err := r.client.PerformanceSnapshot.Query().
		Where(performancesnapshot.StudentID(studentID)).
		Order(ent.Desc(performancesnapshot.FieldSequence), ent.Desc(performancesnapshot.FieldID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}

	data, err := json.Marshal(s.Data)
	if err != nil {
		return nil, fmt.Errorf("marshal ent data: %w", err)
	}
	return &PerformanceSnapshot{
		ID:        s.ID,
		StudentID: s.StudentID,
		Sequence:  s.Sequence,
		Timestamp: s.Timestamp,
		Data:      data,
	}, nil
}

func (r *snapshotRepo) Prune(ctx context.Context, studentID string, keep int) error {
	// Find the newest snapshot that falls outside the keep window.
	snapshots, err := r.client.PerformanceSnapshot.Query().
		Where(performancesnapshot.StudentID(studentID)).
		Order(ent.Desc(performancesnapshot.FieldSequence), ent.Desc(performancesnapshot.FieldID)).
		Offset(keep).
		Limit(1).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query snapshots for prune: %w", err)
	}
	if len(snapshots) == 0 {
		return nil
	}

	_, err = r.client.PerformanceSnapshot.Delete().
		Where(
			performancesnapshot.StudentID(studentID),
			performancesnapshot.IDLTE(snapshots[0].ID),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

// jsonToMap converts an encoded JSON object to map[string]any for ent JSON storage.
func jsonToMap(data []byte) (map[string]any, error) {
	if len(data) == 0 {
		return map[string]any{}, nil
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}
