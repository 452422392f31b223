package websession

// Values is the in-memory session context of one request. It implements
// ports.SessionStore and records whether it needs to be written back.
type Values struct {
	values  map[string]string
	dirty   bool
	cleared bool
	renewed bool
}

// NewValues copies stored into a fresh, unchanged session context.
func NewValues(stored map[string]string) *Values {
	values := make(map[string]string, len(stored))
	for k, v := range stored {
		values[k] = v
	}
	return &Values{values: values}
}

func (v *Values) Get(key string) (string, bool) {
	value, ok := v.values[key]
	return value, ok
}

func (v *Values) Set(key, value string) {
	if current, ok := v.values[key]; ok && current == value {
		return
	}
	v.values[key] = value
	v.dirty = true
}

func (v *Values) Delete(key string) {
	if _, ok := v.values[key]; !ok {
		return
	}
	delete(v.values, key)
	v.dirty = true
}

// Clear drops every value. The session id is rotated when the request
// finishes.
func (v *Values) Clear() {
	v.values = make(map[string]string)
	v.dirty = true
	v.cleared = true
}

// Renew keeps the values and moves them to a new session id when the request
// finishes.
func (v *Values) Renew() {
	v.dirty = true
	v.renewed = true
}

func (v *Values) snapshot() map[string]string {
	out := make(map[string]string, len(v.values))
	for k, val := range v.values {
		out[k] = val
	}
	return out
}
