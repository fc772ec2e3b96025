package preset

// The built-in presets match the stock terrain profiles by name.
func init() {
	builtins := []*Preset{
		{
			Name:       "default",
			WaterLevel: 0.3,
			Bands: []Band{
				{Name: "water", UpTo: 0.3, Color: "#2d5a9e"},
				{Name: "sand", UpTo: 0.35, Color: "#d8c48a"},
				{Name: "grass", UpTo: 0.65, Color: "#4f8a3d"},
				{Name: "rock", UpTo: 0.85, Color: "#7a7468"},
				{Name: "snow", UpTo: 1, Color: "#f2f4f5"},
			},
		},
		{
			Name:       "islands",
			WaterLevel: 0.42,
			Bands: []Band{
				{Name: "deep-water", UpTo: 0.3, Color: "#1d3f77"},
				{Name: "water", UpTo: 0.42, Color: "#2d5a9e"},
				{Name: "beach", UpTo: 0.5, Color: "#e3d6a3"},
				{Name: "jungle", UpTo: 0.8, Color: "#3c7a35"},
				{Name: "peak", UpTo: 1, Color: "#8b8578"},
			},
		},
		{
			Name:       "mountains",
			WaterLevel: 0.15,
			Bands: []Band{
				{Name: "water", UpTo: 0.15, Color: "#30618f"},
				{Name: "valley", UpTo: 0.35, Color: "#5d7f43"},
				{Name: "forest", UpTo: 0.55, Color: "#40602f"},
				{Name: "rock", UpTo: 0.8, Color: "#6e6a61"},
				{Name: "snow", UpTo: 1, Color: "#eef1f4"},
			},
		},
		{
			Name:       "dunes",
			WaterLevel: 0,
			Bands: []Band{
				{Name: "sand", UpTo: 0.6, Color: "#d9b877"},
				{Name: "dune-crest", UpTo: 0.9, Color: "#c4a05c"},
				{Name: "rock", UpTo: 1, Color: "#9a7f52"},
			},
		},
	}
	for _, p := range builtins {
		if err := Register(p); err != nil {
			panic(err)
		}
	}
}
