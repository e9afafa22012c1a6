package canvas

import (
	"slices"

	"floorplan/internal/domains/floor/model"
	"floorplan/internal/domains/floor/model/dto"
)

// Delta is the batch that turns the baseline into the current snapshot.
type Delta struct {
	FloorID string
	Creates []dto.CreateTableInput
	Updates []dto.UpdateTableInput
	Deletes []string
}

func (d Delta) IsEmpty() bool {
	return len(d.Creates) == 0 && len(d.Updates) == 0 && len(d.Deletes) == 0
}

// Input renders the delta as the batch mutation payload. Lists are never null.
func (d Delta) Input() dto.TableBatchUpdateInput {
	input := dto.TableBatchUpdateInput{
		FloorID:          d.FloorID,
		TablesToCreate:   make([]dto.CreateTableInput, 0, len(d.Creates)),
		TablesToUpdate:   make([]dto.UpdateTableInput, 0, len(d.Updates)),
		TableIdsToDelete: make([]string, 0, len(d.Deletes)),
	}

	input.TablesToCreate = append(input.TablesToCreate, d.Creates...)
	input.TablesToUpdate = append(input.TablesToUpdate, d.Updates...)
	input.TableIdsToDelete = append(input.TableIdsToDelete, d.Deletes...)

	return input
}

// ComputeDelta diffs current against baseline. Creates and updates follow
// current order, deletes follow baseline order.
func ComputeDelta(floorID string, baseline, current []model.Table) Delta {
	delta := Delta{FloorID: floorID}

	original := make(map[string]model.Table, len(baseline))
	for _, table := range baseline {
		if id, ok := table.PersistedID(); ok {
			original[id] = table
		}
	}

	remaining := make(map[string]struct{}, len(current))

	for _, table := range current {
		if table.IsNew() {
			capacity := table.Capacity
			if capacity == 0 {
				capacity = model.DefaultCapacity
			}

			delta.Creates = append(delta.Creates, dto.CreateTableInput{
				FloorID:  floorID,
				Name:     table.Name,
				CoordX:   table.CoordX,
				CoordY:   table.CoordY,
				Capacity: capacity,
				Shape:    string(table.Shape),
				Color:    table.Color,
			})

			continue
		}

		id, ok := table.PersistedID()
		if !ok {
			continue
		}

		remaining[id] = struct{}{}

		before, known := original[id]
		if !known {
			continue
		}

		if before.CoordX != table.CoordX || before.CoordY != table.CoordY || before.Name != table.Name {
			delta.Updates = append(delta.Updates, dto.UpdateTableInput{
				ID:     id,
				CoordX: table.CoordX,
				CoordY: table.CoordY,
				Name:   table.Name,
			})
		}
	}

	for _, table := range baseline {
		id, ok := table.PersistedID()
		if !ok {
			continue
		}

		if _, kept := remaining[id]; !kept {
			delta.Deletes = append(delta.Deletes, id)
		}
	}

	return delta
}

// Delta computes the pending batch without side effects.
func (c *Canvas) Delta() Delta {
	return ComputeDelta(c.floorID, c.baseline, c.current)
}

// Snapshot freezes what a save submits.
type Snapshot struct {
	Delta      Delta
	tables     []model.Table
	generation uint64
}

// Snapshot captures the current tables and their delta for submission.
func (c *Canvas) Snapshot() Snapshot {
	return Snapshot{
		Delta:      c.Delta(),
		tables:     slices.Clone(c.current),
		generation: c.generation,
	}
}

// MarkSynced records that there was nothing to save.
func (c *Canvas) MarkSynced() {
	if c.Delta().IsEmpty() {
		c.pending = false
	}
}

// Promote makes the submitted snapshot the new baseline. createdIDs are the
// server identifiers of the created tables, in submission order; the i-th
// pending table in the snapshot receives createdIDs[i]. Edits made after the
// snapshot stay pending. Nothing changes when an error is returned.
func (c *Canvas) Promote(snapshot Snapshot, createdIDs []string) error {
	if snapshot.generation != c.generation {
		return ErrStaleSnapshot
	}

	if len(createdIDs) != len(snapshot.Delta.Creates) {
		return ErrCreatedMismatch
	}

	promoted := make(map[string]string, len(createdIDs))
	baseline := slices.Clone(snapshot.tables)
	next := 0

	for i, table := range baseline {
		if !table.IsNew() {
			continue
		}

		promoted[table.Key()] = createdIDs[next]
		baseline[i].Identity = model.Persisted{ID: createdIDs[next]}
		next++
	}

	current := slices.Clone(c.current)
	for i, table := range current {
		if id, ok := promoted[table.Key()]; ok {
			current[i].Identity = model.Persisted{ID: id}
		}
	}

	c.baseline = baseline
	c.current = current
	c.pending = !c.Delta().IsEmpty()

	return nil
}
