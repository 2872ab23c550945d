package catalog

// schemaSQL is the base DDL for the conversion ledger.
const schemaSQL = `
-- Conversion registry with hash-based change detection
CREATE TABLE IF NOT EXISTS conversions (
    id TEXT PRIMARY KEY,
    path TEXT NOT NULL UNIQUE,
    filename TEXT NOT NULL,
    content_hash TEXT NOT NULL,
    output_path TEXT NOT NULL,
    total_pages INTEGER DEFAULT 0,
    total_characters INTEGER DEFAULT 0,
    pages_with_text INTEGER DEFAULT 0,
    status TEXT DEFAULT 'pending',
    duration_ms INTEGER DEFAULT 0,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
    updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_conversions_hash ON conversions(content_hash);
`
