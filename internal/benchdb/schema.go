package benchdb

const schema = `
-- Benchmark runs
CREATE TABLE IF NOT EXISTS runs (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    source TEXT NOT NULL,
    scales TEXT NOT NULL,
    block INTEGER NOT NULL,
    workers INTEGER NOT NULL,
    started_at TEXT NOT NULL
);

-- One row per processed size
CREATE TABLE IF NOT EXISTS timings (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id INTEGER NOT NULL,
    size INTEGER NOT NULL,
    pixels INTEGER NOT NULL,
    mark_len INTEGER NOT NULL,

    apply_ms REAL NOT NULL,
    decode_ms REAL NOT NULL,
    jpeg_bytes INTEGER NOT NULL,
    png_bytes INTEGER NOT NULL,
    recovered BOOLEAN NOT NULL,
    error TEXT,

    FOREIGN KEY (run_id) REFERENCES runs(id) ON DELETE CASCADE,
    UNIQUE(run_id, size)
);

CREATE INDEX IF NOT EXISTS idx_timings_run ON timings(run_id);
CREATE INDEX IF NOT EXISTS idx_timings_size ON timings(size);
`
