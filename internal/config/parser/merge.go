package parser

func merge(src, dest map[string]any) error {
	for key, val := range src {
		dest[key] = mergeValue(dest[key], val)
	}

	return nil
}

func mergeValue(dest, src any) any {
	if dest == nil {
		return src
	}

	destMap, destIsMap := dest.(map[string]any)
	srcMap, srcIsMap := src.(map[string]any)

	if !destIsMap || !srcIsMap {
		// any other (primitive or slice) type
		// overriding
		return src
	}

	for key, val := range srcMap {
		destMap[key] = mergeValue(destMap[key], val)
	}

	return destMap
}
