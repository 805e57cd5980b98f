package level

// Builtin returns the ten stock cave levels, in play order. Files in the
// data directory can override or extend these.
func Builtin() []Level {
	return []Level{
		{
			Name:  "First Steps",
			Width: 2000,
			Platforms: []Platform{
				{0, GroundY, 2000, 40},
				{200, WorldHeight - 150, 150, 20},
				{500, WorldHeight - 250, 100, 20},
				{750, WorldHeight - 180, 120, 20},
				{1000, WorldHeight - 300, 150, 20},
				{1300, WorldHeight - 200, 100, 20},
			},
			Treasures: []Spot{
				{250, WorldHeight - 150},
				{550, WorldHeight - 250},
				{150, GroundY},
				{900, GroundY},
				{1100, WorldHeight - 300},
				{1400, GroundY},
			},
			Obstacles: []Spot{
				{400, GroundY},
				{1200, GroundY},
			},
			DragonStarts: []Spot{{1600, GroundY}},
			Exit:         Spot{1900, GroundY},
		},
		{
			Name:  "Broken Floor",
			Width: 2000,
			Platforms: []Platform{
				{0, GroundY, 300, 40},
				{400, GroundY, 500, 40},
				{1000, GroundY, 1000, 40},
				{150, WorldHeight - 120, 100, 20},
				{350, WorldHeight - 200, 80, 20},
				{600, WorldHeight - 150, 150, 20},
				{850, WorldHeight - 280, 100, 20},
				{1100, WorldHeight - 200, 120, 20},
				{1400, WorldHeight - 100, 150, 20},
				{1700, WorldHeight - 250, 80, 20},
			},
			Treasures: []Spot{
				{200, WorldHeight - 120},
				{400, WorldHeight - 200},
				{650, WorldHeight - 150},
				{50, GroundY},
				{900, WorldHeight - 280},
				{1150, WorldHeight - 200},
				{1450, WorldHeight - 100},
				{1750, WorldHeight - 250},
				{1950, GroundY},
			},
			Obstacles: []Spot{
				{700, GroundY},
				{1300, GroundY},
				{1600, GroundY},
			},
			DragonStarts: []Spot{{1800, GroundY}},
			Exit:         Spot{1950, GroundY},
		},
		{
			Name:  "High Climb",
			Width: 2200,
			Platforms: []Platform{
				{0, GroundY, 2200, 40},
				{100, WorldHeight - 100, 80, 20},
				{300, WorldHeight - 180, 100, 20},
				{500, WorldHeight - 260, 120, 20},
				{750, WorldHeight - 150, 100, 20},
				{950, WorldHeight - 320, 80, 20},
				{1200, WorldHeight - 220, 150, 20},
				{1450, WorldHeight - 120, 100, 20},
				{1700, WorldHeight - 300, 100, 20},
				{1950, WorldHeight - 200, 100, 20},
			},
			Treasures: []Spot{
				{150, WorldHeight - 100},
				{350, WorldHeight - 180},
				{560, WorldHeight - 260},
				{800, WorldHeight - 150},
				{1000, WorldHeight - 320},
				{1275, WorldHeight - 220},
				{1500, WorldHeight - 120},
				{50, GroundY},
				{1750, WorldHeight - 300},
				{2000, WorldHeight - 200},
				{1050, GroundY},
				{1600, GroundY},
			},
			Obstacles: []Spot{
				{250, GroundY},
				{650, WorldHeight - 180},
				{900, GroundY},
				{1400, GroundY},
				{1850, GroundY},
			},
			DragonStarts: []Spot{{1900, WorldHeight - 300}},
			Exit:         Spot{2150, GroundY},
		},
		{
			Name:  "Narrow Passages",
			Width: 2400,
			Platforms: []Platform{
				{0, GroundY, 400, 40},
				{600, GroundY, 500, 40},
				{1300, GroundY, 1100, 40},
				{450, WorldHeight - 150, 100, 20},
				{500, WorldHeight - 250, 80, 20},
				{700, WorldHeight - 180, 150, 20},
				{900, WorldHeight - 300, 100, 20},
				{1150, WorldHeight - 220, 100, 20},
				{1400, WorldHeight - 160, 120, 20},
				{1650, WorldHeight - 280, 80, 20},
				{1900, WorldHeight - 120, 100, 20},
				{2100, WorldHeight - 200, 100, 20},
			},
			Treasures: []Spot{
				{50, GroundY},
				{500, WorldHeight - 150},
				{550, WorldHeight - 250},
				{750, WorldHeight - 180},
				{950, WorldHeight - 300},
				{1200, WorldHeight - 220},
				{800, GroundY},
				{1450, WorldHeight - 160},
				{1700, WorldHeight - 280},
				{1950, WorldHeight - 120},
				{2150, WorldHeight - 200},
				{1500, GroundY},
				{2350, GroundY},
			},
			Obstacles: []Spot{
				{300, GroundY},
				{800, GroundY},
				{1050, GroundY},
				{1550, GroundY},
				{1800, WorldHeight - 160},
				{2200, GroundY},
			},
			DragonStarts: []Spot{{2000, GroundY}},
			Exit:         Spot{2350, GroundY},
		},
		{
			Name:  "Twin Guardians",
			Width: 2600,
			Platforms: []Platform{
				{0, GroundY, 2600, 40},
				{150, WorldHeight - 100, 70, 20},
				{350, WorldHeight - 150, 70, 20},
				{550, WorldHeight - 200, 70, 20},
				{750, WorldHeight - 120, 70, 20},
				{950, WorldHeight - 250, 70, 20},
				{1150, WorldHeight - 180, 70, 20},
				{1300, WorldHeight - 300, 200, 20},
				{1550, WorldHeight - 250, 150, 20},
				{1750, WorldHeight - 150, 70, 20},
				{1950, WorldHeight - 280, 70, 20},
				{2150, WorldHeight - 100, 70, 20},
				{2350, WorldHeight - 220, 70, 20},
			},
			Treasures: []Spot{
				{185, WorldHeight - 100}, {385, WorldHeight - 150},
				{585, WorldHeight - 200}, {785, WorldHeight - 120},
				{985, WorldHeight - 250}, {1185, WorldHeight - 180},
				{1400, WorldHeight - 300}, {1625, WorldHeight - 250},
				{1785, WorldHeight - 150}, {1985, WorldHeight - 280},
				{2185, WorldHeight - 100}, {2385, WorldHeight - 220},
				{50, GroundY}, {1000, GroundY}, {2000, GroundY},
			},
			Obstacles: []Spot{
				{450, GroundY},
				{900, GroundY},
				{1450, WorldHeight - 300},
				{1700, GroundY},
				{2100, GroundY},
				{2450, GroundY},
			},
			DragonStarts: []Spot{
				{2200, GroundY},
				{1400, WorldHeight - 300},
			},
			Exit: Spot{2550, GroundY},
		},
		{
			Name:  "The Maze",
			Width: 2800,
			Platforms: []Platform{
				{0, GroundY, 200, 40},
				{300, GroundY, 300, 40},
				{700, GroundY, 400, 40},
				{1200, GroundY, 300, 40},
				{1600, GroundY, 1200, 40},
				{100, WorldHeight - 100, 80, 20},
				{250, WorldHeight - 180, 80, 20},
				{150, WorldHeight - 260, 80, 20},
				{300, WorldHeight - 340, 80, 20},
				{500, WorldHeight - 250, 100, 20},
				{650, WorldHeight - 180, 100, 20},
				{800, WorldHeight - 280, 100, 20},
				{950, WorldHeight - 210, 100, 20},
				{1100, WorldHeight - 300, 80, 20},
				{1250, WorldHeight - 200, 80, 20},
				{1400, WorldHeight - 120, 80, 20},
				{1700, WorldHeight - 350, 150, 20},
				{1900, WorldHeight - 280, 100, 20},
				{2100, WorldHeight - 320, 150, 20},
				{2400, WorldHeight - 250, 100, 20},
			},
			Treasures: []Spot{
				{140, WorldHeight - 100}, {290, WorldHeight - 180},
				{190, WorldHeight - 260}, {340, WorldHeight - 340},
				{550, WorldHeight - 250}, {700, WorldHeight - 180},
				{850, WorldHeight - 280}, {1000, WorldHeight - 210},
				{1140, WorldHeight - 300}, {1290, WorldHeight - 200},
				{1440, WorldHeight - 120}, {1775, WorldHeight - 350},
				{1950, WorldHeight - 280}, {2175, WorldHeight - 320},
				{2450, WorldHeight - 250},
				{50, GroundY}, {800, GroundY}, {1300, GroundY}, {2750, GroundY},
			},
			Obstacles: []Spot{
				{400, GroundY},
				{600, WorldHeight - 180},
				{1050, GroundY},
				{1300, WorldHeight - 200},
				{1650, GroundY},
				{2000, GroundY},
				{2300, WorldHeight - 320},
				{2600, GroundY},
			},
			DragonStarts: []Spot{
				{2500, WorldHeight - 350},
				{1000, GroundY},
			},
			Exit: Spot{2750, GroundY},
		},
		{
			Name:  "Rockfall Hollow",
			Width: 2800,
			Platforms: []Platform{
				{0, GroundY, 2800, 40},
				{200, WorldHeight - 100, 300, 20},
				{600, WorldHeight - 180, 100, 20},
				{800, WorldHeight - 250, 150, 20},
				{1100, WorldHeight - 150, 100, 20},
				{1400, WorldHeight - 280, 200, 20},
				{1700, WorldHeight - 350, 150, 20},
				{2000, WorldHeight - 260, 100, 20},
				{2300, WorldHeight - 120, 150, 20},
				{2550, WorldHeight - 200, 100, 20},
			},
			Treasures: []Spot{
				{350, WorldHeight - 100}, {650, WorldHeight - 180},
				{875, WorldHeight - 250}, {1150, WorldHeight - 150},
				{1500, WorldHeight - 280}, {1775, WorldHeight - 350},
				{2050, WorldHeight - 260}, {2375, WorldHeight - 120},
				{2600, WorldHeight - 200},
				{100, GroundY}, {1000, GroundY}, {1900, GroundY}, {2700, GroundY},
			},
			Obstacles: []Spot{
				{500, GroundY},
				{750, GroundY},
				{1200, GroundY},
				{1500, WorldHeight - 280},
				{1650, WorldHeight - 280},
				{2150, GroundY},
				{2450, GroundY},
			},
			DragonStarts: []Spot{
				{950, GroundY},
				{1800, WorldHeight - 350},
			},
			Exit: Spot{2750, GroundY},
		},
		{
			Name:  "Fire Gauntlet",
			Width: 3000,
			Platforms: []Platform{
				{0, GroundY, 3000, 40},
				{100, WorldHeight - 100, 100, 20},
				{300, WorldHeight - 150, 100, 20},
				{500, WorldHeight - 100, 100, 20},
				{700, WorldHeight - 200, 200, 20},
				{1000, WorldHeight - 300, 80, 20},
				{1150, WorldHeight - 320, 80, 20},
				{1300, WorldHeight - 340, 80, 20},
				{1500, WorldHeight - 250, 100, 20},
				{1700, WorldHeight - 350, 100, 20},
				{1900, WorldHeight - 280, 100, 20},
				{2200, WorldHeight - 180, 150, 20},
				{2500, WorldHeight - 240, 100, 20},
				{2800, WorldHeight - 150, 100, 20},
			},
			Treasures: []Spot{
				{150, WorldHeight - 100}, {350, WorldHeight - 150},
				{550, WorldHeight - 100}, {800, WorldHeight - 200},
				{1040, WorldHeight - 300}, {1190, WorldHeight - 320},
				{1340, WorldHeight - 340}, {1550, WorldHeight - 250},
				{1750, WorldHeight - 350}, {1950, WorldHeight - 280},
				{2275, WorldHeight - 180}, {2550, WorldHeight - 240},
				{2850, WorldHeight - 150},
				{400, GroundY}, {1400, GroundY}, {2100, GroundY}, {2950, GroundY},
			},
			Obstacles: []Spot{
				{600, GroundY},
				{900, WorldHeight - 200},
				{1600, GroundY},
				{1800, WorldHeight - 350},
				{2400, GroundY},
				{2700, WorldHeight - 180},
			},
			DragonStarts: []Spot{
				{1100, WorldHeight - 150},
				{2400, GroundY},
			},
			Exit: Spot{2950, GroundY},
		},
		{
			Name:  "The High Crossing",
			Width: 3000,
			Platforms: []Platform{
				{0, GroundY, 100, 40},
				{2900, GroundY, 100, 40},
				{200, WorldHeight - 150, 60, 20},
				{400, WorldHeight - 250, 60, 20},
				{600, WorldHeight - 350, 60, 20},
				{800, WorldHeight - 280, 60, 20},
				{1000, WorldHeight - 400, 60, 20},
				{1200, WorldHeight - 320, 60, 20},
				{1400, WorldHeight - 200, 150, 20},
				{1600, WorldHeight - 300, 100, 20},
				{1800, WorldHeight - 400, 80, 20},
				{2000, WorldHeight - 300, 100, 20},
				{2200, WorldHeight - 200, 150, 20},
				{2400, WorldHeight - 350, 60, 20},
				{2600, WorldHeight - 250, 60, 20},
				{2800, WorldHeight - 150, 60, 20},
			},
			Treasures: []Spot{
				{230, WorldHeight - 150}, {430, WorldHeight - 250},
				{630, WorldHeight - 350}, {830, WorldHeight - 280},
				{1030, WorldHeight - 400}, {1230, WorldHeight - 320},
				{1475, WorldHeight - 200}, {1650, WorldHeight - 300},
				{1840, WorldHeight - 400}, {2050, WorldHeight - 300},
				{2275, WorldHeight - 200}, {2430, WorldHeight - 350},
				{2630, WorldHeight - 250}, {2830, WorldHeight - 150},
				{50, GroundY},
			},
			Obstacles: []Spot{
				{500, WorldHeight - 250},
				{900, WorldHeight - 280},
				{1500, WorldHeight - 200},
				{1700, WorldHeight - 300},
				{2100, WorldHeight - 300},
				{2500, WorldHeight - 350},
			},
			DragonStarts: []Spot{
				{1700, WorldHeight - 150},
				{300, WorldHeight - 150},
			},
			Exit: Spot{2950, GroundY},
		},
		{
			Name:  "Dragon's Hoard",
			Width: 3500,
			Platforms: []Platform{
				{0, GroundY, 3500, 40},
				{150, WorldHeight - 100, 100, 20},
				{350, WorldHeight - 200, 100, 20},
				{550, WorldHeight - 300, 100, 20},
				{800, WorldHeight - 150, 150, 20},
				{1100, WorldHeight - 250, 100, 20},
				{1300, WorldHeight - 100, 80, 20},
				{1500, WorldHeight - 350, 120, 20},
				{1750, WorldHeight - 220, 100, 20},
				{2000, WorldHeight - 400, 200, 20},
				{2300, WorldHeight - 300, 150, 20},
				{2550, WorldHeight - 420, 100, 20},
				{2750, WorldHeight - 350, 150, 20},
				{3000, WorldHeight - 200, 100, 20},
				{3200, WorldHeight - 120, 100, 20},
			},
			Treasures: []Spot{
				{200, WorldHeight - 100}, {400, WorldHeight - 200},
				{600, WorldHeight - 300}, {875, WorldHeight - 150},
				{1150, WorldHeight - 250}, {1340, WorldHeight - 100},
				{1560, WorldHeight - 350}, {1800, WorldHeight - 220},
				{2100, WorldHeight - 400}, {2375, WorldHeight - 300},
				{2600, WorldHeight - 420}, {2825, WorldHeight - 350},
				{3050, WorldHeight - 200}, {3250, WorldHeight - 120},
				{50, GroundY}, {1000, GroundY}, {1600, GroundY},
				{2200, GroundY}, {2900, GroundY}, {3450, GroundY},
			},
			Obstacles: []Spot{
				{450, GroundY},
				{700, WorldHeight - 150},
				{1200, GroundY},
				{1400, WorldHeight - 100},
				{1650, WorldHeight - 350},
				{1900, GroundY},
				{2100, WorldHeight - 400},
				{2450, WorldHeight - 300},
				{2700, GroundY},
				{2950, WorldHeight - 200},
				{3150, GroundY},
				{3350, GroundY},
			},
			DragonStarts: []Spot{
				{3100, GroundY},
				{1500, WorldHeight - 350},
				{600, WorldHeight - 300},
			},
			Exit: Spot{3450, GroundY},
		},
	}
}
