package stdmap

import "github.com/corrigan/diplomat/pkg/diplomat"

// Standard returns the standard 1901 board: 75 provinces, 34 supply
// centers, the full movement adjacency graph including the three
// split-coast provinces (Bulgaria, Spain, St. Petersburg). Each call
// builds a fresh map; callers that adjudicate many games should build one
// and share it, since Map implementations are read-only and the core
// never mutates one.
func Standard() *StdMap {
	m := &StdMap{
		provinces: make(map[diplomat.Province]*province, 75),
		edges:     make(map[diplomat.Province][]edge, 150),
	}

	prov := func(id diplomat.Province, name string, kind diplomat.ProvinceKind, center bool, home diplomat.Nation, coasts ...diplomat.Coast) {
		m.provinces[id] = &province{id: id, name: name, kind: kind, center: center, home: home, coasts: coasts}
		m.order = append(m.order, id)
	}

	addEdge := func(from diplomat.Province, fromCoast diplomat.Coast, to diplomat.Province, toCoast diplomat.Coast, army, fleet bool) {
		m.edges[from] = append(m.edges[from], edge{fromCoast: fromCoast, to: to, toCoast: toCoast, army: army, fleet: fleet})
	}

	// army adds a bidirectional army-only adjacency.
	army := func(from, to diplomat.Province) {
		addEdge(from, diplomat.NoCoast, to, diplomat.NoCoast, true, false)
		addEdge(to, diplomat.NoCoast, from, diplomat.NoCoast, true, false)
	}

	// fleet adds a bidirectional fleet-only adjacency, optionally scoped to
	// a specific coast on either end for a split-coast province.
	fleet := func(from diplomat.Province, fromCoast diplomat.Coast, to diplomat.Province, toCoast diplomat.Coast) {
		addEdge(from, fromCoast, to, toCoast, false, true)
		addEdge(to, toCoast, from, fromCoast, false, true)
	}

	// both adds a bidirectional adjacency legal for armies and fleets alike
	// (no coast split involved on either side).
	both := func(from, to diplomat.Province) {
		addEdge(from, diplomat.NoCoast, to, diplomat.NoCoast, true, true)
		addEdge(to, diplomat.NoCoast, from, diplomat.NoCoast, true, true)
	}

	// --- Inland provinces (14) ---
	prov("boh", "Bohemia", diplomat.Land, false, Neutral)
	prov("bud", "Budapest", diplomat.Land, true, Austria)
	prov("bur", "Burgundy", diplomat.Land, false, Neutral)
	prov("gal", "Galicia", diplomat.Land, false, Neutral)
	prov("mos", "Moscow", diplomat.Land, true, Russia)
	prov("mun", "Munich", diplomat.Land, true, Germany)
	prov("par", "Paris", diplomat.Land, true, France)
	prov("ruh", "Ruhr", diplomat.Land, false, Neutral)
	prov("ser", "Serbia", diplomat.Land, true, Neutral)
	prov("sil", "Silesia", diplomat.Land, false, Neutral)
	prov("tyr", "Tyrolia", diplomat.Land, false, Neutral)
	prov("ukr", "Ukraine", diplomat.Land, false, Neutral)
	prov("vie", "Vienna", diplomat.Land, true, Austria)
	prov("war", "Warsaw", diplomat.Land, true, Russia)

	// --- Coastal provinces without split coasts (39) ---
	prov("alb", "Albania", diplomat.Coastal, false, Neutral)
	prov("ank", "Ankara", diplomat.Coastal, true, Turkey)
	prov("apu", "Apulia", diplomat.Coastal, false, Neutral)
	prov("arm", "Armenia", diplomat.Coastal, false, Neutral)
	prov("bel", "Belgium", diplomat.Coastal, true, Neutral)
	prov("ber", "Berlin", diplomat.Coastal, true, Germany)
	prov("bre", "Brest", diplomat.Coastal, true, France)
	prov("cly", "Clyde", diplomat.Coastal, false, Neutral)
	prov("con", "Constantinople", diplomat.Coastal, true, Turkey)
	prov("den", "Denmark", diplomat.Coastal, true, Neutral)
	prov("edi", "Edinburgh", diplomat.Coastal, true, England)
	prov("fin", "Finland", diplomat.Coastal, false, Neutral)
	prov("gas", "Gascony", diplomat.Coastal, false, Neutral)
	prov("gre", "Greece", diplomat.Coastal, true, Neutral)
	prov("hol", "Holland", diplomat.Coastal, true, Neutral)
	prov("kie", "Kiel", diplomat.Coastal, true, Germany)
	prov("lon", "London", diplomat.Coastal, true, England)
	prov("lvn", "Livonia", diplomat.Coastal, false, Neutral)
	prov("lvp", "Liverpool", diplomat.Coastal, true, England)
	prov("mar", "Marseilles", diplomat.Coastal, true, France)
	prov("naf", "North Africa", diplomat.Coastal, false, Neutral)
	prov("nap", "Naples", diplomat.Coastal, true, Italy)
	prov("nwy", "Norway", diplomat.Coastal, true, Neutral)
	prov("pic", "Picardy", diplomat.Coastal, false, Neutral)
	prov("pie", "Piedmont", diplomat.Coastal, false, Neutral)
	prov("por", "Portugal", diplomat.Coastal, true, Neutral)
	prov("pru", "Prussia", diplomat.Coastal, false, Neutral)
	prov("rom", "Rome", diplomat.Coastal, true, Italy)
	prov("rum", "Rumania", diplomat.Coastal, true, Neutral)
	prov("sev", "Sevastopol", diplomat.Coastal, true, Russia)
	prov("smy", "Smyrna", diplomat.Coastal, true, Turkey)
	prov("swe", "Sweden", diplomat.Coastal, true, Neutral)
	prov("syr", "Syria", diplomat.Coastal, false, Neutral)
	prov("tri", "Trieste", diplomat.Coastal, true, Austria)
	prov("tun", "Tunisia", diplomat.Coastal, true, Neutral)
	prov("tus", "Tuscany", diplomat.Coastal, false, Neutral)
	prov("ven", "Venice", diplomat.Coastal, true, Italy)
	prov("wal", "Wales", diplomat.Coastal, false, Neutral)
	prov("yor", "Yorkshire", diplomat.Coastal, false, Neutral)

	// --- Split-coast provinces (3) ---
	prov("bul", "Bulgaria", diplomat.Coastal, true, Neutral, diplomat.EastCoast, diplomat.SouthCoast)
	prov("spa", "Spain", diplomat.Coastal, true, Neutral, diplomat.NorthCoast, diplomat.SouthCoast)
	prov("stp", "St. Petersburg", diplomat.Coastal, true, Russia, diplomat.NorthCoast, diplomat.SouthCoast)

	// --- Sea provinces (19) ---
	prov("adr", "Adriatic Sea", diplomat.Sea, false, Neutral)
	prov("aeg", "Aegean Sea", diplomat.Sea, false, Neutral)
	prov("bal", "Baltic Sea", diplomat.Sea, false, Neutral)
	prov("bar", "Barents Sea", diplomat.Sea, false, Neutral)
	prov("bla", "Black Sea", diplomat.Sea, false, Neutral)
	prov("bot", "Gulf of Bothnia", diplomat.Sea, false, Neutral)
	prov("eas", "Eastern Mediterranean", diplomat.Sea, false, Neutral)
	prov("eng", "English Channel", diplomat.Sea, false, Neutral)
	prov("gol", "Gulf of Lyon", diplomat.Sea, false, Neutral)
	prov("hel", "Heligoland Bight", diplomat.Sea, false, Neutral)
	prov("ion", "Ionian Sea", diplomat.Sea, false, Neutral)
	prov("iri", "Irish Sea", diplomat.Sea, false, Neutral)
	prov("mao", "Mid-Atlantic Ocean", diplomat.Sea, false, Neutral)
	prov("nao", "North Atlantic Ocean", diplomat.Sea, false, Neutral)
	prov("nrg", "Norwegian Sea", diplomat.Sea, false, Neutral)
	prov("nth", "North Sea", diplomat.Sea, false, Neutral)
	prov("ska", "Skagerrak", diplomat.Sea, false, Neutral)
	prov("tys", "Tyrrhenian Sea", diplomat.Sea, false, Neutral)
	prov("wes", "Western Mediterranean", diplomat.Sea, false, Neutral)

	nc, sc, ec := diplomat.NorthCoast, diplomat.SouthCoast, diplomat.EastCoast

	// ---- Sea-to-sea ----
	fleet("adr", diplomat.NoCoast, "ion", diplomat.NoCoast)
	fleet("aeg", diplomat.NoCoast, "eas", diplomat.NoCoast)
	fleet("aeg", diplomat.NoCoast, "ion", diplomat.NoCoast)
	fleet("bal", diplomat.NoCoast, "bot", diplomat.NoCoast)
	fleet("eng", diplomat.NoCoast, "iri", diplomat.NoCoast)
	fleet("eng", diplomat.NoCoast, "mao", diplomat.NoCoast)
	fleet("eng", diplomat.NoCoast, "nth", diplomat.NoCoast)
	fleet("gol", diplomat.NoCoast, "tys", diplomat.NoCoast)
	fleet("gol", diplomat.NoCoast, "wes", diplomat.NoCoast)
	fleet("hel", diplomat.NoCoast, "nth", diplomat.NoCoast)
	fleet("ion", diplomat.NoCoast, "eas", diplomat.NoCoast)
	fleet("ion", diplomat.NoCoast, "tys", diplomat.NoCoast)
	fleet("iri", diplomat.NoCoast, "mao", diplomat.NoCoast)
	fleet("iri", diplomat.NoCoast, "nao", diplomat.NoCoast)
	fleet("mao", diplomat.NoCoast, "nao", diplomat.NoCoast)
	fleet("mao", diplomat.NoCoast, "wes", diplomat.NoCoast)
	fleet("nao", diplomat.NoCoast, "nrg", diplomat.NoCoast)
	fleet("nth", diplomat.NoCoast, "nrg", diplomat.NoCoast)
	fleet("nth", diplomat.NoCoast, "ska", diplomat.NoCoast)
	fleet("nrg", diplomat.NoCoast, "bar", diplomat.NoCoast)
	fleet("tys", diplomat.NoCoast, "wes", diplomat.NoCoast)

	// ---- Sea-to-coastal ----
	fleet("adr", diplomat.NoCoast, "alb", diplomat.NoCoast)
	fleet("adr", diplomat.NoCoast, "apu", diplomat.NoCoast)
	fleet("adr", diplomat.NoCoast, "tri", diplomat.NoCoast)
	fleet("adr", diplomat.NoCoast, "ven", diplomat.NoCoast)

	fleet("aeg", diplomat.NoCoast, "bul", sc)
	fleet("aeg", diplomat.NoCoast, "con", diplomat.NoCoast)
	fleet("aeg", diplomat.NoCoast, "gre", diplomat.NoCoast)
	fleet("aeg", diplomat.NoCoast, "smy", diplomat.NoCoast)

	fleet("bal", diplomat.NoCoast, "ber", diplomat.NoCoast)
	fleet("bal", diplomat.NoCoast, "den", diplomat.NoCoast)
	fleet("bal", diplomat.NoCoast, "kie", diplomat.NoCoast)
	fleet("bal", diplomat.NoCoast, "lvn", diplomat.NoCoast)
	fleet("bal", diplomat.NoCoast, "pru", diplomat.NoCoast)
	fleet("bal", diplomat.NoCoast, "swe", diplomat.NoCoast)

	fleet("bar", diplomat.NoCoast, "nwy", diplomat.NoCoast)
	fleet("bar", diplomat.NoCoast, "stp", nc)

	fleet("bla", diplomat.NoCoast, "ank", diplomat.NoCoast)
	fleet("bla", diplomat.NoCoast, "arm", diplomat.NoCoast)
	fleet("bla", diplomat.NoCoast, "bul", ec)
	fleet("bla", diplomat.NoCoast, "con", diplomat.NoCoast)
	fleet("bla", diplomat.NoCoast, "rum", diplomat.NoCoast)
	fleet("bla", diplomat.NoCoast, "sev", diplomat.NoCoast)

	fleet("bot", diplomat.NoCoast, "fin", diplomat.NoCoast)
	fleet("bot", diplomat.NoCoast, "lvn", diplomat.NoCoast)
	fleet("bot", diplomat.NoCoast, "stp", sc)
	fleet("bot", diplomat.NoCoast, "swe", diplomat.NoCoast)

	fleet("eas", diplomat.NoCoast, "smy", diplomat.NoCoast)
	fleet("eas", diplomat.NoCoast, "syr", diplomat.NoCoast)

	fleet("eng", diplomat.NoCoast, "bel", diplomat.NoCoast)
	fleet("eng", diplomat.NoCoast, "bre", diplomat.NoCoast)
	fleet("eng", diplomat.NoCoast, "lon", diplomat.NoCoast)
	fleet("eng", diplomat.NoCoast, "pic", diplomat.NoCoast)
	fleet("eng", diplomat.NoCoast, "wal", diplomat.NoCoast)

	fleet("gol", diplomat.NoCoast, "mar", diplomat.NoCoast)
	fleet("gol", diplomat.NoCoast, "pie", diplomat.NoCoast)
	fleet("gol", diplomat.NoCoast, "spa", sc)
	fleet("gol", diplomat.NoCoast, "tus", diplomat.NoCoast)

	fleet("hel", diplomat.NoCoast, "den", diplomat.NoCoast)
	fleet("hel", diplomat.NoCoast, "hol", diplomat.NoCoast)
	fleet("hel", diplomat.NoCoast, "kie", diplomat.NoCoast)

	fleet("ion", diplomat.NoCoast, "alb", diplomat.NoCoast)
	fleet("ion", diplomat.NoCoast, "apu", diplomat.NoCoast)
	fleet("ion", diplomat.NoCoast, "gre", diplomat.NoCoast)
	fleet("ion", diplomat.NoCoast, "nap", diplomat.NoCoast)
	fleet("ion", diplomat.NoCoast, "tun", diplomat.NoCoast)

	fleet("iri", diplomat.NoCoast, "lvp", diplomat.NoCoast)
	fleet("iri", diplomat.NoCoast, "wal", diplomat.NoCoast)

	fleet("mao", diplomat.NoCoast, "bre", diplomat.NoCoast)
	fleet("mao", diplomat.NoCoast, "gas", diplomat.NoCoast)
	fleet("mao", diplomat.NoCoast, "naf", diplomat.NoCoast)
	fleet("mao", diplomat.NoCoast, "por", diplomat.NoCoast)
	fleet("mao", diplomat.NoCoast, "spa", nc)
	fleet("mao", diplomat.NoCoast, "spa", sc)

	fleet("nao", diplomat.NoCoast, "cly", diplomat.NoCoast)
	fleet("nao", diplomat.NoCoast, "lvp", diplomat.NoCoast)

	fleet("nth", diplomat.NoCoast, "bel", diplomat.NoCoast)
	fleet("nth", diplomat.NoCoast, "den", diplomat.NoCoast)
	fleet("nth", diplomat.NoCoast, "edi", diplomat.NoCoast)
	fleet("nth", diplomat.NoCoast, "hol", diplomat.NoCoast)
	fleet("nth", diplomat.NoCoast, "lon", diplomat.NoCoast)
	fleet("nth", diplomat.NoCoast, "nwy", diplomat.NoCoast)
	fleet("nth", diplomat.NoCoast, "yor", diplomat.NoCoast)

	fleet("nrg", diplomat.NoCoast, "cly", diplomat.NoCoast)
	fleet("nrg", diplomat.NoCoast, "edi", diplomat.NoCoast)
	fleet("nrg", diplomat.NoCoast, "nwy", diplomat.NoCoast)

	fleet("ska", diplomat.NoCoast, "den", diplomat.NoCoast)
	fleet("ska", diplomat.NoCoast, "nwy", diplomat.NoCoast)
	fleet("ska", diplomat.NoCoast, "swe", diplomat.NoCoast)

	fleet("tys", diplomat.NoCoast, "nap", diplomat.NoCoast)
	fleet("tys", diplomat.NoCoast, "rom", diplomat.NoCoast)
	fleet("tys", diplomat.NoCoast, "tun", diplomat.NoCoast)
	fleet("tys", diplomat.NoCoast, "tus", diplomat.NoCoast)

	fleet("wes", diplomat.NoCoast, "naf", diplomat.NoCoast)
	fleet("wes", diplomat.NoCoast, "spa", sc)
	fleet("wes", diplomat.NoCoast, "tun", diplomat.NoCoast)

	// ---- Inland-to-inland (army only) ----
	army("boh", "gal")
	army("boh", "mun")
	army("boh", "sil")
	army("boh", "tyr")
	army("boh", "vie")
	army("bud", "gal")
	army("bud", "vie")
	army("bur", "mun")
	army("bur", "par")
	army("bur", "ruh")
	army("gal", "sil")
	army("gal", "ukr")
	army("gal", "vie")
	army("gal", "war")
	army("mos", "ukr")
	army("mos", "war")
	army("mun", "ruh")
	army("mun", "sil")
	army("mun", "tyr")
	army("sil", "war")
	army("tyr", "vie")
	army("ukr", "war")

	// ---- Inland-to-coastal (army only) ----
	army("bud", "rum")
	army("bud", "ser")
	army("bud", "tri")
	army("bur", "bel")
	army("bur", "gas")
	army("bur", "mar")
	army("bur", "pic")
	army("gal", "rum")
	army("gas", "mar")
	army("mos", "lvn")
	army("mos", "sev")
	army("mos", "stp")
	army("mun", "ber")
	army("mun", "kie")
	army("par", "bre")
	army("par", "gas")
	army("par", "pic")
	army("ruh", "bel")
	army("ruh", "hol")
	army("ruh", "kie")
	army("ser", "alb")
	army("ser", "bul")
	army("ser", "gre")
	army("ser", "rum")
	army("ser", "tri")
	army("sil", "ber")
	army("sil", "pru")
	army("tyr", "pie")
	army("tyr", "tri")
	army("tyr", "ven")
	army("ukr", "rum")
	army("ukr", "sev")
	army("vie", "tri")
	army("war", "lvn")
	army("war", "pru")

	// ---- Coastal-to-coastal: both land and sea border ----
	both("alb", "gre")
	both("alb", "tri")
	both("ank", "arm")
	both("ank", "con")
	both("apu", "nap")
	both("apu", "ven")
	both("bel", "hol")
	both("bel", "pic")
	both("ber", "kie")
	both("ber", "pru")
	both("bre", "gas")
	both("bre", "pic")
	both("cly", "edi")
	both("cly", "lvp")
	both("con", "smy")
	both("den", "kie")
	both("den", "swe")
	both("edi", "yor")
	both("fin", "swe")
	both("hol", "kie")
	both("lon", "wal")
	both("lon", "yor")
	both("lvp", "wal")
	both("mar", "pie")
	both("naf", "tun")
	both("nwy", "swe")
	both("pie", "tus")
	both("pru", "lvn")
	both("rom", "nap")
	both("rom", "tus")
	both("sev", "arm")
	both("sev", "rum")
	both("smy", "syr")
	both("tri", "ven")

	// ---- Coastal-to-coastal: land border only, different seas ----
	army("ank", "smy")
	army("apu", "rom")
	army("arm", "smy")
	army("arm", "syr")
	army("edi", "lvp")
	army("fin", "nwy")
	army("lvp", "yor")
	army("pie", "ven")
	army("rom", "ven")
	army("tus", "ven")
	army("wal", "yor")

	// ---- Coastal-to-coastal: sea border only, no shared land border ----
	fleet("con", diplomat.NoCoast, "bul", ec)
	fleet("con", diplomat.NoCoast, "bul", sc)
	fleet("gre", diplomat.NoCoast, "bul", sc)
	fleet("rum", diplomat.NoCoast, "bul", ec)
	fleet("gas", diplomat.NoCoast, "spa", nc)
	fleet("mar", diplomat.NoCoast, "spa", sc)
	fleet("por", diplomat.NoCoast, "spa", nc)
	fleet("por", diplomat.NoCoast, "spa", sc)
	fleet("fin", diplomat.NoCoast, "stp", sc)
	fleet("lvn", diplomat.NoCoast, "stp", sc)
	fleet("nwy", diplomat.NoCoast, "stp", nc)

	// ---- Split-coast land borders (army only) ----
	army("con", "bul")
	army("gre", "bul")
	army("rum", "bul")
	army("gas", "spa")
	army("mar", "spa")
	army("por", "spa")
	army("fin", "stp")
	army("lvn", "stp")
	army("nwy", "stp")

	return m
}
