// Package fishbait declares the agents for the payloads exchanged with the
// fishbait poker backend: the game state mirror, API errors and the request
// bodies the client posts.
//
// Cards travel as ISO ids (0..51, rank-major, suits in s h d c order) and are
// stamped as two-character strings ("2s" .. "Ac"). Unknown cards stay null.
package fishbait
