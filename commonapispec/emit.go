package commonapispec

import (
	"encoding/json"
	"hash/fnv"
	"sort"
)

// HashPath returns a deterministic hash of a source file path, used for
// CommonAPISpec.ID. Per the Design Notes' resolved Open Question, this
// module always hashes the file path (not type/content), since that is
// the behavior this specification standardizes on.
func HashPath(path string) int64 {
	h := fnv.New64a()
	h.Write([]byte(path))
	return int64(h.Sum64())
}

// Sort puts every order-sensitive field of spec into the deterministic
// shape required by invariant §3.2.6: data_types in lexicographic order
// of qualified_name, and is a no-op on endpoints, which the Operation
// Extractor already produces in port-type/operation document order.
func (spec *CommonAPISpec) Sort() {
	sort.Slice(spec.DataTypes, func(i, j int) bool {
		return spec.DataTypes[i].QualifiedNameString < spec.DataTypes[j].QualifiedNameString
	})
}

// Encode marshals spec with indentation, for writing to the output path
// named by the CLI's -out flag. Go's struct-field declaration order is
// stable across runs, so identical input yields byte-identical output,
// per Property 1.
func Encode(spec *CommonAPISpec) ([]byte, error) {
	spec.Sort()
	return json.MarshalIndent(spec, "", "  ")
}
