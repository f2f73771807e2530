package mirror

// SQLite schema DDL constants

const schemaLemmas = `
CREATE TABLE IF NOT EXISTS lemmas (
    id TEXT PRIMARY KEY,
    statement TEXT NOT NULL,
    proof TEXT,
    tags TEXT,
    category TEXT NOT NULL,
    notes TEXT,
    created_at DATETIME NOT NULL,
    modified_at DATETIME NOT NULL
)`

const schemaDependencies = `
CREATE TABLE IF NOT EXISTS dependencies (
    source_id TEXT NOT NULL,
    target_id TEXT NOT NULL,
    PRIMARY KEY (source_id, target_id)
)`

const indexDependenciesTarget = `
CREATE INDEX IF NOT EXISTS idx_dependencies_target ON dependencies(target_id)`

const indexLemmasCategory = `
CREATE INDEX IF NOT EXISTS idx_lemmas_category ON lemmas(category)`

func allSchemaStatements() []string {
	return []string{
		schemaLemmas,
		schemaDependencies,
		indexDependenciesTarget,
		indexLemmasCategory,
	}
}

func allPragmas() []string {
	return []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA foreign_keys=ON",
	}
}
