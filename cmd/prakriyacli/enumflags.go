package main

import (
	"fmt"
	"strings"

	"github.com/ambuda-org/vidyut-prakriya/args"
)

// The args package's enums carry a String() method (or, for the smaller
// ones, none at all) but no parser — specs.go builds them from Go code,
// not command-line text. These tables are the CLI's only place that
// needs string<->enum lookups, so they live here rather than in args.

var ganaByName = map[string]args.Gana{
	"bhvadi": args.Bhvadi, "adadi": args.Adadi, "juhotyadi": args.Juhotyadi,
	"divadi": args.Divadi, "svadi": args.Svadi, "tudadi": args.Tudadi,
	"rudhadi": args.Rudhadi, "tanadi": args.Tanadi, "kryadi": args.Kryadi,
	"curadi": args.Curadi, "kandvadi": args.Kandvadi,
}

var lakaraByName = map[string]args.Lakara{
	"lat": args.Lat, "lit": args.Lit, "lut": args.Lut, "lrt": args.Lrt,
	"lot": args.Lot, "lan": args.Lan, "lin-vidhi": args.LinVidhi,
	"lin-ashir": args.LinAshir, "lun": args.Lun, "lrn": args.Lrn,
}

var purushaByName = map[string]args.Purusha{
	"prathama": args.Prathama, "madhyama": args.Madhyama, "uttama": args.Uttama,
}

var vacanaByName = map[string]args.Vacana{
	"eka": args.Eka, "dvi": args.Dvi, "bahu": args.Bahu,
}

var prayogaByName = map[string]args.Prayoga{
	"kartari": args.Kartari, "karmani": args.Karmani, "bhave": args.Bhave,
}

var padaByName = map[string]args.Pada{
	"": args.PadaUnspecified, "parasmaipada": args.Parasmaipada, "atmanepada": args.Atmanepada,
}

var lingaByName = map[string]args.Linga{
	"pum": args.Pum, "stri": args.Stri, "napumsaka": args.Napumsaka,
}

var vibhaktiByName = map[string]args.Vibhakti{
	"v1": args.V1, "v2": args.V2, "v3": args.V3, "v4": args.V4,
	"v5": args.V5, "v6": args.V6, "v7": args.V7, "sambodhana": args.Sambodhana,
}

var krtByName = map[string]args.Krt{
	"ktva": args.Ktva, "lyap": args.Lyap, "tumun": args.Tumun, "kta": args.Kta,
	"ktavatu": args.Ktavatu, "shatr": args.Shatr, "shanac": args.Shanac,
	"gay": args.GaY, "ghan": args.GaY, "ap": args.Ap,
}

var taddhitaByName = map[string]args.Taddhita{
	"tyan": args.Tyan, "yat": args.Yat, "matup": args.Matup,
}

var conditionByName = map[string]args.SemanticCondition{
	"": args.NoCondition, "apatyartha": args.Apatyartha,
	"tena-proktam": args.TenaProktam, "tatra-bhava": args.TatraBhava,
}

var samasaTypeByName = map[string]args.SamasaType{
	"tatpurusha": args.Tatpurusha, "karmadharaya": args.Karmadharaya,
	"dvandva": args.Dvandva, "bahuvrihi": args.Bahuvrihi,
	"avyayibhava": args.Avyayibhava,
}

var sanadiByName = map[string]args.Sanadi{
	"san": args.San, "nic": args.Nic, "yan": args.Yan, "yan-luk": args.YanLuk,
	"kyac": args.Kyac, "kamyac": args.Kamyac, "kyan": args.Kyan, "kvip": args.Kvip,
}

func lookupEnum[T any](flag, value string, table map[string]T) (T, error) {
	var zero T
	v, ok := table[strings.ToLower(value)]
	if !ok {
		return zero, fmt.Errorf("--%s: unrecognized value %q", flag, value)
	}
	return v, nil
}
