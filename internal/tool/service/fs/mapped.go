package fs

// MappedFile is a read-only view of a file's bytes.
// The slice returned by Bytes is invalid after Close.
type MappedFile struct {
	data  []byte
	unmap func() error
}

// Bytes returns the mapped content.
func (m *MappedFile) Bytes() []byte {
	return m.data
}

// Close releases the mapping.
func (m *MappedFile) Close() error {
	if m.unmap == nil {
		return nil
	}
	unmap := m.unmap
	m.unmap = nil
	m.data = nil
	return unmap()
}
