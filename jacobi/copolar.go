package jacobi

// CopolarN holds the principal trio sn, cn, dn.
type CopolarN struct {
	Sn, Cn, Dn float64
}

// CopolarS holds cs, ds, ns, the functions with s as second letter.
type CopolarS struct {
	Cs, Ds, Ns float64
}

// CopolarC holds dc, nc, sc.
type CopolarC struct {
	Dc, Nc, Sc float64
}

// CopolarD holds nd, sd, cd.
type CopolarD struct {
	Nd, Sd, Cd float64
}

func (n CopolarN) S() CopolarS {
	ns := 1 / n.Sn
	return CopolarS{Cs: ns * n.Cn, Ds: ns * n.Dn, Ns: ns}
}

func (n CopolarN) C() CopolarC {
	nc := 1 / n.Cn
	return CopolarC{Dc: nc * n.Dn, Nc: nc, Sc: nc * n.Sn}
}

func (n CopolarN) D() CopolarD {
	nd := 1 / n.Dn
	return CopolarD{Nd: nd, Sd: nd * n.Sn, Cd: nd * n.Cn}
}
