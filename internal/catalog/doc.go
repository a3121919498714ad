// MovieMate - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemate

/*
Package catalog loads and serves the immutable movie catalog.

Four tabular datasets feed the catalog:

  - movies (required): movieId, title, genres, optional year
  - ratings: movieId, rating
  - tag definitions: tagId, tag
  - tag relevance: movieId, tagId, relevance

Delimiters are sniffed from the header line (comma, semicolon, tab or pipe)
unless configured, a UTF-8 BOM is ignored and column names match
case-insensitively. A file whose first 4096 bytes look like an HTML page is
rejected, which catches a download that returned an error page instead of data.

Loading derives each movie's release year (from the title when there is no
year column), its average rating and rating count, then applies the quality
gate (avg >= 3.0 and n >= 50 by default, only when ratings are configured) and
an optional CEL filter expression:

	year >= 1950 && "Drama" in genres && avg_rating >= 3.5

Any failure is a *LoadError and no partial catalog is ever returned. Once built,
a *Catalog is read-only and safe for concurrent use without locking.

Usage:

	src := catalog.NewSource(catalog.NewLoader(cfg).Load)
	cat, err := src.Catalog(ctx) // loads once, memoized for the process
	if err != nil {
	    logging.Fatal().Err(err).Msg("Catalog load failed")
	}
*/
package catalog
