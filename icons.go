package tasknest

// Icon is the closed set of category icons the views know how to draw
type Icon string

const (
	IconBriefcase Icon = "Briefcase"
	IconUser      Icon = "User"
	IconHeart     Icon = "Heart"
	IconBookOpen  Icon = "BookOpen"
	IconStar      Icon = "Star"
)

// Icons lists every known icon
var Icons = []Icon{IconBriefcase, IconUser, IconHeart, IconBookOpen, IconStar}

// FallbackIcon is drawn for names outside the enumeration
const FallbackIcon = IconStar

// ParseIcon maps a stored icon name onto the enumeration
func ParseIcon(name string) Icon {
	for _, icon := range Icons {
		if string(icon) == name {
			return icon
		}
	}
	return FallbackIcon
}

// IconOf returns the icon a category is drawn with
func (c Category) IconOf() Icon {
	return ParseIcon(c.Icon)
}
