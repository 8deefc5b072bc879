package geocode

// city is a built-in place with its standard-time UTC offset (no DST).
type city struct {
	name      string
	latitude  float64
	longitude float64
	offset    float64
}

// cities is ordered so partial matches resolve the same way on every run.
// Names are already normalized.
var cities = []city{
	{"istanbul", 41.0082, 28.9784, 3},
	{"ankara", 39.9334, 32.8597, 3},
	{"izmir", 38.4237, 27.1428, 3},
	{"bursa", 40.1885, 29.0610, 3},
	{"antalya", 36.8969, 30.7133, 3},
	{"adana", 37.0000, 35.3213, 3},
	{"konya", 37.8746, 32.4932, 3},
	{"gaziantep", 37.0662, 37.3833, 3},
	{"mersin", 36.8121, 34.6415, 3},
	{"diyarbakir", 37.9144, 40.2306, 3},
	{"kayseri", 38.7312, 35.4787, 3},
	{"eskisehir", 39.7767, 30.5206, 3},
	{"trabzon", 41.0027, 39.7168, 3},
	{"samsun", 41.2867, 36.3300, 3},
	{"denizli", 37.7765, 29.0864, 3},
	{"malatya", 38.3552, 38.3095, 3},
	{"erzurum", 39.9055, 41.2658, 3},
	{"sivas", 39.7477, 37.0179, 3},
	{"manisa", 38.6191, 27.4289, 3},
	{"new york", 40.7128, -74.0060, -5},
	{"los angeles", 34.0522, -118.2437, -8},
	{"chicago", 41.8781, -87.6298, -6},
	{"houston", 29.7604, -95.3698, -6},
	{"phoenix", 33.4484, -112.0740, -7},
	{"philadelphia", 39.9526, -75.1652, -5},
	{"san antonio", 29.4241, -98.4936, -6},
	{"san diego", 32.7157, -117.1611, -8},
	{"dallas", 32.7767, -96.7970, -6},
	{"san francisco", 37.7749, -122.4194, -8},
	{"seattle", 47.6062, -122.3321, -8},
	{"miami", 25.7617, -80.1918, -5},
	{"boston", 42.3601, -71.0589, -5},
	{"denver", 39.7392, -104.9903, -7},
	{"washington", 38.9072, -77.0369, -5},
	{"atlanta", 33.7490, -84.3880, -5},
	{"london", 51.5074, -0.1278, 0},
	{"paris", 48.8566, 2.3522, 1},
	{"berlin", 52.5200, 13.4050, 1},
	{"madrid", 40.4168, -3.7038, 1},
	{"rome", 41.9028, 12.4964, 1},
	{"amsterdam", 52.3676, 4.9041, 1},
	{"vienna", 48.2082, 16.3738, 1},
	{"brussels", 50.8503, 4.3517, 1},
	{"zurich", 47.3769, 8.5417, 1},
	{"munich", 48.1351, 11.5820, 1},
	{"barcelona", 41.3874, 2.1686, 1},
	{"lisbon", 38.7223, -9.1393, 0},
	{"stockholm", 59.3293, 18.0686, 1},
	{"oslo", 59.9139, 10.7522, 1},
	{"copenhagen", 55.6761, 12.5683, 1},
	{"helsinki", 60.1699, 24.9384, 2},
	{"athens", 37.9838, 23.7275, 2},
	{"warsaw", 52.2297, 21.0122, 1},
	{"prague", 50.0755, 14.4378, 1},
	{"budapest", 47.4979, 19.0402, 1},
	{"bucharest", 44.4268, 26.1025, 2},
	{"moscow", 55.7558, 37.6173, 3},
	{"saint petersburg", 59.9343, 30.3351, 3},
	{"kyiv", 50.4501, 30.5234, 2},
	{"kiev", 50.4501, 30.5234, 2},
	{"tokyo", 35.6762, 139.6503, 9},
	{"beijing", 39.9042, 116.4074, 8},
	{"shanghai", 31.2304, 121.4737, 8},
	{"mumbai", 19.0760, 72.8777, 5.5},
	{"delhi", 28.7041, 77.1025, 5.5},
	{"new delhi", 28.6139, 77.2090, 5.5},
	{"bangkok", 13.7563, 100.5018, 7},
	{"singapore", 1.3521, 103.8198, 8},
	{"hong kong", 22.3193, 114.1694, 8},
	{"seoul", 37.5665, 126.9780, 9},
	{"taipei", 25.0330, 121.5654, 8},
	{"dubai", 25.2048, 55.2708, 4},
	{"tel aviv", 32.0853, 34.7818, 2},
	{"jerusalem", 31.7683, 35.2137, 2},
	{"riyadh", 24.7136, 46.6753, 3},
	{"tehran", 35.6892, 51.3890, 3.5},
	{"baghdad", 33.3152, 44.3661, 3},
	{"karachi", 24.8607, 67.0011, 5},
	{"jakarta", -6.2088, 106.8456, 7},
	{"manila", 14.5995, 120.9842, 8},
	{"mexico city", 19.4326, -99.1332, -6},
	{"toronto", 43.6532, -79.3832, -5},
	{"montreal", 45.5017, -73.5673, -5},
	{"vancouver", 49.2827, -123.1207, -8},
	{"sao paulo", -23.5505, -46.6333, -3},
	{"rio de janeiro", -22.9068, -43.1729, -3},
	{"buenos aires", -34.6037, -58.3816, -3},
	{"lima", -12.0464, -77.0428, -5},
	{"bogota", 4.7110, -74.0721, -5},
	{"santiago", -33.4489, -70.6693, -4},
	{"cairo", 30.0444, 31.2357, 2},
	{"lagos", 6.5244, 3.3792, 1},
	{"johannesburg", -26.2041, 28.0473, 2},
	{"cape town", -33.9249, 18.4241, 2},
	{"nairobi", -1.2921, 36.8219, 3},
	{"casablanca", 33.5731, -7.5898, 1},
	{"sydney", -33.8688, 151.2093, 10},
	{"melbourne", -37.8136, 144.9631, 10},
	{"auckland", -36.8485, 174.7633, 12},
}
