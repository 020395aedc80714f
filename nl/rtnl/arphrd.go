// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package rtnl

import (
	"github.com/platinasystems/rtnl/nl"
	"golang.org/x/sys/unix"
)

// LinkType is an ARP hardware type.
type LinkType uint16

const (
	ARPHRD_NETROM             LinkType = unix.ARPHRD_NETROM
	ARPHRD_ETHER              LinkType = unix.ARPHRD_ETHER
	ARPHRD_EETHER             LinkType = unix.ARPHRD_EETHER
	ARPHRD_AX25               LinkType = unix.ARPHRD_AX25
	ARPHRD_PRONET             LinkType = unix.ARPHRD_PRONET
	ARPHRD_CHAOS              LinkType = unix.ARPHRD_CHAOS
	ARPHRD_IEEE802            LinkType = unix.ARPHRD_IEEE802
	ARPHRD_ARCNET             LinkType = unix.ARPHRD_ARCNET
	ARPHRD_APPLETLK           LinkType = unix.ARPHRD_APPLETLK
	ARPHRD_DLCI               LinkType = unix.ARPHRD_DLCI
	ARPHRD_ATM                LinkType = unix.ARPHRD_ATM
	ARPHRD_METRICOM           LinkType = unix.ARPHRD_METRICOM
	ARPHRD_IEEE1394           LinkType = unix.ARPHRD_IEEE1394
	ARPHRD_EUI64              LinkType = unix.ARPHRD_EUI64
	ARPHRD_INFINIBAND         LinkType = unix.ARPHRD_INFINIBAND
	ARPHRD_SLIP               LinkType = unix.ARPHRD_SLIP
	ARPHRD_CSLIP              LinkType = unix.ARPHRD_CSLIP
	ARPHRD_SLIP6              LinkType = unix.ARPHRD_SLIP6
	ARPHRD_CSLIP6             LinkType = unix.ARPHRD_CSLIP6
	ARPHRD_RSRVD              LinkType = unix.ARPHRD_RSRVD
	ARPHRD_ADAPT              LinkType = unix.ARPHRD_ADAPT
	ARPHRD_ROSE               LinkType = unix.ARPHRD_ROSE
	ARPHRD_X25                LinkType = unix.ARPHRD_X25
	ARPHRD_HWX25              LinkType = unix.ARPHRD_HWX25
	ARPHRD_CAN                LinkType = unix.ARPHRD_CAN
	ARPHRD_PPP                LinkType = unix.ARPHRD_PPP
	ARPHRD_CISCO              LinkType = unix.ARPHRD_CISCO
	ARPHRD_HDLC                        = ARPHRD_CISCO
	ARPHRD_LAPB               LinkType = unix.ARPHRD_LAPB
	ARPHRD_DDCMP              LinkType = unix.ARPHRD_DDCMP
	ARPHRD_RAWHDLC            LinkType = unix.ARPHRD_RAWHDLC
	ARPHRD_TUNNEL             LinkType = unix.ARPHRD_TUNNEL
	ARPHRD_TUNNEL6            LinkType = unix.ARPHRD_TUNNEL6
	ARPHRD_FRAD               LinkType = unix.ARPHRD_FRAD
	ARPHRD_SKIP               LinkType = unix.ARPHRD_SKIP
	ARPHRD_LOOPBACK           LinkType = unix.ARPHRD_LOOPBACK
	ARPHRD_LOCALTLK           LinkType = unix.ARPHRD_LOCALTLK
	ARPHRD_FDDI               LinkType = unix.ARPHRD_FDDI
	ARPHRD_BIF                LinkType = unix.ARPHRD_BIF
	ARPHRD_SIT                LinkType = unix.ARPHRD_SIT
	ARPHRD_IPDDP              LinkType = unix.ARPHRD_IPDDP
	ARPHRD_IPGRE              LinkType = unix.ARPHRD_IPGRE
	ARPHRD_PIMREG             LinkType = unix.ARPHRD_PIMREG
	ARPHRD_HIPPI              LinkType = unix.ARPHRD_HIPPI
	ARPHRD_ASH                LinkType = unix.ARPHRD_ASH
	ARPHRD_ECONET             LinkType = unix.ARPHRD_ECONET
	ARPHRD_IRDA               LinkType = unix.ARPHRD_IRDA
	ARPHRD_FCPP               LinkType = unix.ARPHRD_FCPP
	ARPHRD_FCAL               LinkType = unix.ARPHRD_FCAL
	ARPHRD_FCPL               LinkType = unix.ARPHRD_FCPL
	ARPHRD_FCFABRIC           LinkType = unix.ARPHRD_FCFABRIC
	ARPHRD_IEEE802_TR         LinkType = unix.ARPHRD_IEEE802_TR
	ARPHRD_IEEE80211          LinkType = unix.ARPHRD_IEEE80211
	ARPHRD_IEEE80211_PRISM    LinkType = unix.ARPHRD_IEEE80211_PRISM
	ARPHRD_IEEE80211_RADIOTAP LinkType = unix.ARPHRD_IEEE80211_RADIOTAP
	ARPHRD_IEEE802154         LinkType = unix.ARPHRD_IEEE802154
	ARPHRD_IEEE802154_MONITOR LinkType = unix.ARPHRD_IEEE802154_MONITOR
	ARPHRD_PHONET             LinkType = unix.ARPHRD_PHONET
	ARPHRD_PHONET_PIPE        LinkType = unix.ARPHRD_PHONET_PIPE
	ARPHRD_CAIF               LinkType = unix.ARPHRD_CAIF
	ARPHRD_IP6GRE             LinkType = unix.ARPHRD_IP6GRE
	ARPHRD_NETLINK            LinkType = unix.ARPHRD_NETLINK
	ARPHRD_6LOWPAN            LinkType = unix.ARPHRD_6LOWPAN
	ARPHRD_VSOCKMON           LinkType = unix.ARPHRD_VSOCKMON
	ARPHRD_RAWIP              LinkType = unix.ARPHRD_RAWIP
	ARPHRD_MCTP               LinkType = unix.ARPHRD_MCTP
	ARPHRD_VOID               LinkType = unix.ARPHRD_VOID
	ARPHRD_NONE               LinkType = unix.ARPHRD_NONE
)

var LinkTypeName = map[LinkType]string{
	ARPHRD_NETROM:             "netrom",
	ARPHRD_ETHER:              "ether",
	ARPHRD_EETHER:             "eether",
	ARPHRD_AX25:               "ax25",
	ARPHRD_PRONET:             "pronet",
	ARPHRD_CHAOS:              "chaos",
	ARPHRD_IEEE802:            "ieee802",
	ARPHRD_ARCNET:             "arcnet",
	ARPHRD_APPLETLK:           "appletlk",
	ARPHRD_DLCI:               "dlci",
	ARPHRD_ATM:                "atm",
	ARPHRD_METRICOM:           "metricom",
	ARPHRD_IEEE1394:           "ieee1394",
	ARPHRD_EUI64:              "eui64",
	ARPHRD_INFINIBAND:         "infiniband",
	ARPHRD_SLIP:               "slip",
	ARPHRD_CSLIP:              "cslip",
	ARPHRD_SLIP6:              "slip6",
	ARPHRD_CSLIP6:             "cslip6",
	ARPHRD_RSRVD:              "rsrvd",
	ARPHRD_ADAPT:              "adapt",
	ARPHRD_ROSE:               "rose",
	ARPHRD_X25:                "x25",
	ARPHRD_HWX25:              "hwx25",
	ARPHRD_CAN:                "can",
	ARPHRD_PPP:                "ppp",
	ARPHRD_CISCO:              "cisco",
	ARPHRD_LAPB:               "lapb",
	ARPHRD_DDCMP:              "ddcmp",
	ARPHRD_RAWHDLC:            "rawhdlc",
	ARPHRD_TUNNEL:             "tunnel",
	ARPHRD_TUNNEL6:            "tunnel6",
	ARPHRD_FRAD:               "frad",
	ARPHRD_SKIP:               "skip",
	ARPHRD_LOOPBACK:           "loopback",
	ARPHRD_LOCALTLK:           "localtlk",
	ARPHRD_FDDI:               "fddi",
	ARPHRD_BIF:                "bif",
	ARPHRD_SIT:                "sit",
	ARPHRD_IPDDP:              "ipddp",
	ARPHRD_IPGRE:              "ipgre",
	ARPHRD_PIMREG:             "pimreg",
	ARPHRD_HIPPI:              "hippi",
	ARPHRD_ASH:                "ash",
	ARPHRD_ECONET:             "econet",
	ARPHRD_IRDA:               "irda",
	ARPHRD_FCPP:               "fcpp",
	ARPHRD_FCAL:               "fcal",
	ARPHRD_FCPL:               "fcpl",
	ARPHRD_FCFABRIC:           "fcfabric",
	ARPHRD_IEEE802_TR:         "ieee802_tr",
	ARPHRD_IEEE80211:          "ieee80211",
	ARPHRD_IEEE80211_PRISM:    "ieee80211_prism",
	ARPHRD_IEEE80211_RADIOTAP: "ieee80211_radiotap",
	ARPHRD_IEEE802154:         "ieee802154",
	ARPHRD_IEEE802154_MONITOR: "ieee802154_monitor",
	ARPHRD_PHONET:             "phonet",
	ARPHRD_PHONET_PIPE:        "phonet_pipe",
	ARPHRD_CAIF:               "caif",
	ARPHRD_IP6GRE:             "ip6gre",
	ARPHRD_NETLINK:            "netlink",
	ARPHRD_6LOWPAN:            "6lowpan",
	ARPHRD_VSOCKMON:           "vsockmon",
	ARPHRD_RAWIP:              "rawip",
	ARPHRD_MCTP:               "mctp",
	ARPHRD_VOID:               "void",
	ARPHRD_NONE:               "none",
}

var LinkTypeByName = nl.ByName(LinkTypeName)

func (t LinkType) Known() bool {
	_, found := LinkTypeName[t]
	return found
}

func (t LinkType) String() string { return nl.Name(LinkTypeName, t) }

func (LinkType) Size() int { return 2 }

func (t LinkType) Read(b []byte) (int, error) { return nl.EncodeEnum(b, t) }

func (t *LinkType) Write(b []byte) (int, error) { return nl.DecodeEnum(b, t) }
