// Package gc is the host-language-facing facade over objspace: the small
// surface an interpreter embeds against, without reaching into the
// collector's internal heap and page bookkeeping directly.
package gc
