// Package foreign decodes legacy-encoded byte buffers carried as the
// opaque payload of a KindData object — the host-supplied kind the
// collector never looks inside, only finalizes through a free hook.
package foreign
