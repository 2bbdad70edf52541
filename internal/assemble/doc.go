// Package assemble builds 5D image stacks from recipe-resolved files.
//
// The assembler walks a recipe's coordinate space in canonical order, loads
// every referenced file through the imgio registry, and concatenates the
// layers into one (round, channel, z, y, x) tensor. Shape and dtype
// homogeneity across layers is a hard precondition: any mismatch aborts
// the whole tensor with an error naming both conflicting files, never a
// silent broadcast or cast.
package assemble
