// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import "testing"

func TestRebind(t *testing.T) {
	testCases := []struct {
		dbType string
		query  string
		want   string
	}{
		{TypeSQLite, "SELECT * FROM t WHERE a = ? AND b = ?", "SELECT * FROM t WHERE a = ? AND b = ?"},
		{TypePostgres, "SELECT * FROM t WHERE a = ? AND b = ?", "SELECT * FROM t WHERE a = $1 AND b = $2"},
		{TypePostgres, "SELECT 1", "SELECT 1"},
	}

	for _, tc := range testCases {
		if got := Rebind(tc.dbType, tc.query); got != tc.want {
			t.Errorf("Rebind(%s, %q) = %q, want %q", tc.dbType, tc.query, got, tc.want)
		}
	}
}

func TestOpen_UnsupportedType(t *testing.T) {
	if _, err := Open("mysql", "whatever"); err == nil {
		t.Error("Expected error for unsupported database type")
	}
}

func TestCreateSchema_Idempotent(t *testing.T) {
	conn, err := Open(TypeSQLite, "file:schema_test?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer conn.Close()
	conn.SetMaxOpenConns(1)

	for i := 0; i < 2; i++ {
		if err := CreateSchema(conn, TypeSQLite); err != nil {
			t.Fatalf("CreateSchema call %d failed: %v", i+1, err)
		}
	}

	var count int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM quiz_session`).Scan(&count); err != nil {
		t.Fatalf("quiz_session not queryable: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected empty table, got %d rows", count)
	}
}
