//go:build spatial_unchecked

package spatial

// Performance build profile: every validation check compiles out. The caller
// is trusted to keep bodies inside the bound and query radii within one cell.
const validate = false
