// Package fieldmap translates record field names between the camelCase names used
// on the wire and the snake_case names used by the relational and document stores.
package fieldmap

// Mapper is an explicit two-way table of wire and storage names for one record kind.
type Mapper struct {
	wireToStorage map[string]string
	storageToWire map[string]string
}

// New builds a mapper from wire -> storage pairs. Names that are identical in both
// conventions still need an entry, otherwise they are treated as unknown.
func New(pairs map[string]string) *Mapper {
	m := &Mapper{
		wireToStorage: make(map[string]string, len(pairs)),
		storageToWire: make(map[string]string, len(pairs)),
	}
	for wire, storage := range pairs {
		m.wireToStorage[wire] = storage
		m.storageToWire[storage] = wire
	}
	return m
}

// ToStorage rewrites a wire-keyed field set into storage names. Unknown keys are dropped.
func (m *Mapper) ToStorage(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for key, value := range fields {
		if name, ok := m.wireToStorage[key]; ok {
			out[name] = value
		}
	}
	return out
}

// NormalizeWire accepts a request body that may use either convention and returns
// it keyed by wire names. A wire-named key wins over its storage-named twin. Keys
// the mapper does not know are passed through so validation can still see them.
func (m *Mapper) NormalizeWire(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for key, value := range fields {
		if _, isWire := m.wireToStorage[key]; isWire {
			out[key] = value
		}
	}
	for key, value := range fields {
		if _, isWire := m.wireToStorage[key]; isWire {
			continue
		}
		wire, ok := m.storageToWire[key]
		if !ok {
			out[key] = value
			continue
		}
		if _, taken := out[wire]; !taken {
			out[wire] = value
		}
	}
	return out
}
