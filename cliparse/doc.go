// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration parsing from CLI flags and environment variables.

# Configuration Priority

Settings are resolved in order (first wins):

 1. CLI flags
 2. Environment variables (including a .env file loaded by LoadDotEnv)
 3. Defaults

# Usage

	if err := cliparse.LoadDotEnv(); err != nil {
		log.Fatal(err)
	}
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

# Settings

	Flag  Env            Default
	-p    PORT           3000
	-d    DATABASE_URL   file:todos.db (required for postgres)
	-t    DATABASE_TYPE  sqlite
*/
package cliparse
