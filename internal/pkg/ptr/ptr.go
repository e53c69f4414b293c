package ptr

import (
	"github.com/jackc/pgx/v5/pgtype"
)

func StringFromPgtype(pt pgtype.Text) *string {
	if !pt.Valid {
		return nil
	}
	return &pt.String
}

func PgtypeFromString(s *string) pgtype.Text {
	if s == nil || *s == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func Uint64FromPgtype(pi pgtype.Int8) *uint64 {
	if !pi.Valid || pi.Int64 < 0 {
		return nil
	}
	v := uint64(pi.Int64)
	return &v
}

func PgtypeFromUint64(v *uint64) pgtype.Int8 {
	if v == nil {
		return pgtype.Int8{}
	}
	return pgtype.Int8{Int64: int64(*v), Valid: true}
}

func Of[T any](v T) *T {
	return &v
}
