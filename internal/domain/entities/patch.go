package entities

func putString(fields map[string]any, key string, v *string) {
	if v != nil {
		fields[key] = *v
	}
}

func applyString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
