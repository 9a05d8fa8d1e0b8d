package sound

// sthana models the point of articulation of a sound. A sound may have
// more than one (e.g. nasals also articulate at their place of closure).
type sthana int

const (
	sthanaKantha sthana = iota
	sthanaTalu
	sthanaMurdha
	sthanaDanta
	sthanaOshtha
	sthanaNasika
	sthanaKanthaTalu
	sthanaKanthaOshtha
	sthanaDantaOshtha
)

type ghosha int

const (
	ghoshaGhoshavat ghosha = iota // voiced
	ghoshaAghosha                 // voiceless
)

type prana int

const (
	pranaAlpaprana prana = iota // unaspirated
	pranaMahaprana              // aspirated
)

type prayatna int

const (
	prayatnaVivrta prayatna = iota // open
	prayatnaIshat                  // semi-open (semivowels)
	prayatnaSprshta                // closed (stops)
)

// uccarana is the phonetic feature vector of one sound, used only to
// compute savarṇa-nearness distances for Map building.
type uccarana struct {
	sthana   []sthana
	ghosha   ghosha
	prana    prana
	prayatna prayatna
}

// distance is a heuristic articulatory distance: the fewer differing
// features, the closer the sounds. Mirrors sounds.rs's Uccarana::distance.
func (u uccarana) distance(other uccarana) int {
	d := 0
	if u.ghosha != other.ghosha {
		d++
	}
	if u.prana != other.prana {
		d++
	}
	if u.prayatna != other.prayatna {
		d++
	}

	sthanaDist := len(u.sthana) + len(other.sthana)
	for _, s := range u.sthana {
		for _, t := range other.sthana {
			if s == t {
				sthanaDist -= 2
				break
			}
		}
	}
	return d + sthanaDist
}

var soundProps = buildSoundProps()

func buildSoundProps() map[byte]uccarana {
	sthanaOf := map[byte][]sthana{}
	add := func(spec string, val sthana) {
		set := MustS(spec)
		for c := 0; c < 256; c++ {
			if set.Contains(byte(c)) {
				sthanaOf[byte(c)] = append(sthanaOf[byte(c)], val)
			}
		}
	}
	add("a ku~ h H", sthanaKantha)
	add("i cu~ y S", sthanaTalu)
	add("f wu~ r z", sthanaMurdha)
	add("x tu~ l s", sthanaDanta)
	add("u pu~", sthanaOshtha)
	add("e E", sthanaKanthaTalu)
	add("o O", sthanaKanthaOshtha)
	add("v", sthanaDantaOshtha)
	for _, c := range MustS("Yam M").String() {
		sthanaOf[byte(c)] = append(sthanaOf[byte(c)], sthanaNasika)
	}

	ghoshaOf := map[byte]ghosha{}
	for _, c := range MustS("ac haS M").String() {
		ghoshaOf[byte(c)] = ghoshaGhoshavat
	}
	for _, c := range MustS("Kar H").String() {
		ghoshaOf[byte(c)] = ghoshaAghosha
	}

	pranaOf := map[byte]prana{}
	for _, c := range MustS("ac yam jaS car M").String() {
		pranaOf[byte(c)] = pranaAlpaprana
	}
	for _, c := range FromString("KGCJWQTDPBh").String() {
		pranaOf[byte(c)] = pranaMahaprana
	}

	prayatnaOf := map[byte]prayatna{}
	for _, c := range MustS("yaR Sar").String() {
		prayatnaOf[byte(c)] = prayatnaIshat
	}
	for _, c := range MustS("ac h").String() {
		prayatnaOf[byte(c)] = prayatnaVivrta
	}
	for _, c := range MustS("Yay").String() {
		prayatnaOf[byte(c)] = prayatnaSprshta
	}

	out := map[byte]uccarana{}
	for _, c := range MustS("al H M").String() {
		b := byte(c)
		g, ok := ghoshaOf[b]
		if !ok {
			g = ghoshaAghosha
		}
		p, ok := pranaOf[b]
		if !ok {
			p = pranaAlpaprana
		}
		pr, ok := prayatnaOf[b]
		if !ok {
			pr = prayatnaVivrta
		}
		out[b] = uccarana{sthana: sthanaOf[b], ghosha: g, prana: p, prayatna: pr}
	}
	return out
}

// Map builds a sound-to-sound map from keys (a pratyāhāra-style spec) to
// values (another such spec), assigning each key the member of values
// with the minimum articulatory distance. This is how the engine derives
// substitutions like jaśtva (final voiced stops before a voiced sound):
//
//	m, _ := sound.BuildMap("Jal", "jaS")
//	v, _ := m.Get('k') // 'g'
func BuildMap(keys, values string) (Map, error) {
	keySet, err := S(keys)
	if err != nil {
		return Map{}, err
	}
	valSet, err := S(values)
	if err != nil {
		return Map{}, err
	}

	var m Map
	for k := 0; k < 256; k++ {
		kb := byte(k)
		if !keySet.Contains(kb) {
			continue
		}
		kProps := soundProps[kb]

		best := byte(0)
		bestDist := int(^uint(0) >> 1)
		for v := 0; v < 256; v++ {
			vb := byte(v)
			if !valSet.Contains(vb) {
				continue
			}
			d := kProps.distance(soundProps[vb])
			if d < bestDist {
				bestDist = d
				best = vb
			}
		}
		m[kb] = best
	}
	return m, nil
}

// MustBuildMap is BuildMap but panics on error; for package-level vars.
func MustBuildMap(keys, values string) Map {
	m, err := BuildMap(keys, values)
	if err != nil {
		panic(err)
	}
	return m
}
