package database

// migrationsSQL contains all database migrations, applied in version
// order. Each one must be safe to run on a database that already has it.
var migrationsSQL = map[int]string{
	1: migrationV1Observances,
	2: migrationV2SeedObservances,
}

// migrationV1Observances creates the observances table.
//
// A row is either:
//   - fixed: calendar + month + day, resolved per year in that calendar
//   - easter: easter_offset days from Easter Sunday under easter_mode
//     (NULL means the server's configured default)
const migrationV1Observances = `
CREATE TABLE IF NOT EXISTS observances (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL UNIQUE,
    kind TEXT NOT NULL CHECK (kind IN ('fixed', 'easter')),

    -- fixed observances
    calendar INTEGER NOT NULL DEFAULT 0 CHECK (calendar BETWEEN 0 AND 3),
    month INTEGER NOT NULL DEFAULT 0,
    day INTEGER NOT NULL DEFAULT 0,

    -- easter observances
    easter_offset INTEGER NOT NULL DEFAULT 0,
    easter_mode INTEGER CHECK (easter_mode IS NULL OR easter_mode BETWEEN 0 AND 3),

    created_at TEXT NOT NULL DEFAULT (datetime('now')),
    updated_at TEXT NOT NULL DEFAULT (datetime('now')),

    CHECK (kind = 'easter' OR (month BETWEEN 1 AND 13 AND day BETWEEN 1 AND 31))
);

CREATE INDEX IF NOT EXISTS idx_observances_kind ON observances(kind);
`

// migrationV2SeedObservances loads the default observances. Existing names
// are left alone.
const migrationV2SeedObservances = `
INSERT OR IGNORE INTO observances (name, kind, easter_offset, easter_mode) VALUES
    ('Ash Wednesday',   'easter', -46, NULL),
    ('Palm Sunday',     'easter',  -7, NULL),
    ('Good Friday',     'easter',  -2, NULL),
    ('Easter',          'easter',   0, NULL),
    ('Ascension',       'easter',  39, NULL),
    ('Pentecost',       'easter',  49, NULL),
    ('Orthodox Easter', 'easter',   0, 3);

INSERT OR IGNORE INTO observances (name, kind, calendar, month, day) VALUES
    ('Christmas',          'fixed', 0, 12, 25),
    ('Orthodox Christmas', 'fixed', 1, 12, 25),
    ('Rosh Hashanah',      'fixed', 2,  1,  1),
    ('Yom Kippur',         'fixed', 2,  1, 10),
    ('Hanukkah',           'fixed', 2,  3, 25),
    ('Purim',              'fixed', 2,  7, 14),
    ('Passover',           'fixed', 2,  8, 15),
    ('Shavuot',            'fixed', 2, 10,  6);
`
