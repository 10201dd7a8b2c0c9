package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

const snapshotsTable = "snapshots"

// Snapshot columns.
const (
	colID        = "id"
	colSessionID = "session_id"
	colBank      = "bank"
	colTakenAt   = "taken_at"
	colData      = "data"
)

var (
	snapshotsColumns = []*schema.Column{
		{Name: colID, Type: field.TypeInt, Increment: true},
		{Name: colSessionID, Type: field.TypeString, Comment: "UUID of the quiz session that was suspended"},
		{Name: colBank, Type: field.TypeString, Comment: "Fingerprint of the question bank"},
		{Name: colTakenAt, Type: field.TypeInt64, Comment: "Unix milliseconds when the snapshot was taken"},
		{Name: colData, Type: field.TypeJSON, Comment: "Controller snapshot as JSON"},
	}

	snapshotsSchema = &schema.Table{
		Name:       snapshotsTable,
		Columns:    snapshotsColumns,
		PrimaryKey: []*schema.Column{snapshotsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "snapshot_bank", Columns: []*schema.Column{snapshotsColumns[2]}},
			{Name: "snapshot_taken_at", Columns: []*schema.Column{snapshotsColumns[3]}},
		},
	}

	tables = []*schema.Table{snapshotsSchema}
)
