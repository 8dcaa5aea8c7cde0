package pgxtext

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// ErrNotInstalled is returned by Register when the database has no citext
// type visible on the search path.
var ErrNotInstalled = errors.New("pgxtext: citext extension is not installed")

const (
	typeName      = "citext"
	arrayTypeName = "_citext"
)

// citext is an extension type, so its OID differs per database.
const loadTypeSQL = `
SELECT t.oid, t.typarray
FROM pg_type t
WHERE t.oid = to_regtype('citext')`

// Register looks up the citext OIDs on conn and registers them with the
// connection's type map, using pgx's text codec for citext and an array
// codec for citext[].
func Register(ctx context.Context, conn *pgx.Conn) error {
	var oid, arrayOID uint32
	err := conn.QueryRow(ctx, loadTypeSQL).Scan(&oid, &arrayOID)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotInstalled
	}
	if err != nil {
		return fmt.Errorf("pgxtext: load citext type: %w", err)
	}

	RegisterTypes(conn.TypeMap(), oid, arrayOID)
	return nil
}

// RegisterTypes registers citext under oid and citext[] under arrayOID.
func RegisterTypes(m *pgtype.Map, oid, arrayOID uint32) {
	t := &pgtype.Type{Name: typeName, OID: oid, Codec: pgtype.TextCodec{}}
	m.RegisterType(t)
	m.RegisterType(&pgtype.Type{
		Name:  arrayTypeName,
		OID:   arrayOID,
		Codec: &pgtype.ArrayCodec{ElementType: t},
	})
}

// AfterConnect is Register in the shape of pgxpool.Config.AfterConnect.
func AfterConnect(ctx context.Context, conn *pgx.Conn) error {
	return Register(ctx, conn)
}
