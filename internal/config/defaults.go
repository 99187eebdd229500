package config

const (
	defaultModuleName = "Audio"
	defaultSourceDir  = "Source/USRDIR/Assets_1_Audio_Streams"
	defaultTargetDir  = "GameFiles/Assets_1_Audio_Streams"
	defaultConverter  = "vgmstream-cli"
	defaultSourceExt  = ".snu"
	defaultTargetExt  = ".wav"
)

// Default returns a Config populated with repository defaults. The blacklist
// and global directory sets reflect the known locale and shared-asset folder
// names of the supported game layout.
func Default() Config {
	return Config{
		Module: Module{
			ModuleName: defaultModuleName,
			Mode:       "independent",
		},
		Directories: Directories{
			SourceDir: defaultSourceDir,
			TargetDir: defaultTargetDir,
		},
		Tools: Tools{
			Converter: defaultConverter,
		},
		Extensions: Extensions{
			SourceExt: defaultSourceExt,
			TargetExt: defaultTargetExt,
		},
		LanguageBlacklist: map[string]string{
			"IT": "",
			"ES": "",
			"FR": "",
		},
		GlobalDirs: map[string]string{
			"80b_crow": "", "amb_airc": "", "amb_chao": "", "amb_cour": "",
			"amb_dung": "", "amb_ext_": "", "amb_fore": "", "amb_fren": "",
			"amb_gara": "", "amb_int_": "", "amb_mans": "", "amb_nort": "",
			"amb_riot": "", "amb_shir": "", "amb_vent": "", "bin_rev0": "",
			"brt_dino": "", "brt_dior": "", "brt_myst": "", "brt_plan": "",
			"brt_temp": "", "bsh_air_": "", "bsh_beac": "", "bsh_figh": "",
			"bsh_fire": "", "bsh_ice_": "", "bsh_vill": "", "bsh__air": "",
			"che_cart": "", "che_cent": "", "che_mark": "", "che_mo_b": "",
			"che_q_an": "", "dod_aqua": "", "dod_dock": "", "gamehub_": "",
			"gts_full": "", "gts_seas": "", "gts_stat": "", "gts_subu": "",
			"gts_vent": "", "gts_viol": "", "mtp_heav": "", "mus_simp": "",
			"sss_cont": "", "sss_lab_": "", "sss_mall": "",
		},
	}
}
