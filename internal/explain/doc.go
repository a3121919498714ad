// MovieMate - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviemate

/*
Package explain turns a ranked candidate into a short justification.

Two strategies implement Explainer:

  - TemplateExplainer (default): rule categories genre, tag, rating,
    popularity and era each contribute at most one phrase, drawn from a
    pool by an injected random source, followed by a trust phrase derived
    from the combined similarity. Pools can be replaced from a YAML file.
  - GenerativeExplainer: asks an OpenAI-compatible chat completion
    endpoint for a few sentences, optionally enriched with a plot
    overview. Any failure yields a deterministic fallback sentence.

Explain never fails; the worst case is a generic sentence.

Cache keeps generated text per movie for one selection fingerprint and is
stored inside the user's session.
*/
package explain
